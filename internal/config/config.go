package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/nao1215/passaudit/internal/model"
	"github.com/nao1215/passaudit/internal/wordlist"
)

// Default configuration values.
// These values are chosen to keep batch analysis and wordlist generation
// bounded while remaining practical for interactive audit work.
// Generation-specific defaults (separators, leet budget, candidate cap)
// are defined in the wordlist package next to the generator so that the
// CLI and library callers agree on them.
const (
	// DefaultConcurrency of 10 concurrent analyses balances throughput with
	// resource usage when processing password list files. Pattern matching
	// allocates per candidate, so unbounded parallelism can spike memory on
	// large lists.
	DefaultConcurrency = 10

	// DefaultOutputPath is the default wordlist output file name.
	// A relative path keeps the generated list in the invocation directory,
	// which is what most cracking tool workflows expect.
	DefaultOutputPath = "wordlist.txt"

	// DefaultEstimator is the pattern-matching estimator. The naive charset
	// entropy estimator is selected explicitly via --basic or automatically
	// when pattern matching fails on an input.
	DefaultEstimator = model.EstimatorZxcvbn

	// AppName is the application name used for XDG directory paths.
	AppName = "passaudit"
)

// Config holds all configuration options for passaudit.
// This struct is designed to be populated from CLI flags and config file
// profiles, then passed through the application via dependency injection
// rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., AnalyzeConfig, WordlistConfig) for simplicity. The analyze and
// wordlist commands share several knobs (inputs, report format, database
// settings), and nesting would add complexity without significant benefit.
// If the configuration grows significantly, consider refactoring into
// sub-structs.
type Config struct {
	// Inputs is the list of personal context keywords (names, pets, dates).
	// The analyzer feeds them to the strength estimator as a user dictionary
	// and checks passwords for literal containment; the wordlist generator
	// expands them into candidates.
	Inputs []string

	// ListFile is a path to a file containing one password per line.
	// When set, the analyze command runs in batch mode over the file
	// instead of analyzing positional arguments.
	ListFile string

	// Concurrency is the number of concurrent analyses in batch mode.
	// Higher values increase throughput but allocate more per-candidate
	// match state.
	Concurrency int

	// Estimator selects the strength estimator by name:
	// model.EstimatorZxcvbn for pattern matching or model.EstimatorHeuristic
	// for naive charset entropy.
	Estimator string

	// Years is the raw year specification for wordlist decoration.
	// Comma-separated years and FROM-TO ranges ("1990-1995,2024").
	// Empty means a three-year window centered on the current year.
	Years string

	// Separators are the joiner strings used when combining pairs of
	// expanded tokens during wordlist generation. An empty list disables
	// pair joining entirely.
	Separators []string

	// Leet enables leetspeak substitution during wordlist generation.
	Leet bool

	// LeetMax is the per-token leetspeak variant budget. The substitution
	// product grows exponentially with token length, so the budget keeps a
	// single long token from dominating the candidate list.
	LeetMax int

	// MaxSize is the hard cap on produced wordlist candidates.
	// Generation short-circuits once the cap is reached.
	MaxSize int

	// OutputPath is the wordlist output file path.
	OutputPath string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport enables JSON report output instead of human-readable format.
	// When true, outputs the full report structure for machine consumption.
	// When false, outputs a human-readable console report (default).
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of human-readable
	// format. When true, outputs GitHub Flavored Markdown with tables, alerts,
	// and pie charts. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the analysis report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .passaudit in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// Profiles holds wordlist profiles loaded from the config file.
	// This is populated by LoadConfigFile and applied before CLI flags.
	Profiles *File

	// DBDir is the directory path for storing the SQLite audit database.
	// Defaults to the XDG data directory (~/.local/share/passaudit on Linux).
	DBDir string

	// SaveToDB indicates whether to record results in the audit database.
	// Disabled via the --no-save flag.
	SaveToDB bool
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use cases.
// Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because many defaults are non-zero (e.g., concurrency, the
// leet budget). This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		Concurrency: DefaultConcurrency,
		Estimator:   DefaultEstimator,
		Separators:  wordlist.DefaultSeparators(),
		Leet:        true,
		LeetMax:     wordlist.DefaultLeetBudget,
		MaxSize:     wordlist.DefaultMaxSize,
		OutputPath:  DefaultOutputPath,
		DBDir:       XDGDataDir(),
		SaveToDB:    true,
	}
}

// XDGDataDir returns the XDG data directory for passaudit.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/passaudit
// On macOS: ~/Library/Application Support/passaudit
// On Windows: %LOCALAPPDATA%\passaudit
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for passaudit.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/passaudit
// On macOS: ~/Library/Application Support/passaudit
// On Windows: %APPDATA%\passaudit
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGCacheDir returns the XDG cache directory for passaudit.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.cache/passaudit
// On macOS: ~/Library/Caches/passaudit
// On Windows: %LOCALAPPDATA%\passaudit\cache
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any analysis begins.
//
// We chose to return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	// Concurrency must be positive; zero would mean no batch workers
	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	// MaxSize must be positive; a zero cap would always produce empty lists
	if c.MaxSize <= 0 {
		return ErrInvalidMaxSize
	}

	// LeetMax must be positive; the budget admits at least the raw token
	if c.LeetMax <= 0 {
		return ErrInvalidLeetBudget
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	// Estimator must name a known implementation
	if c.Estimator != model.EstimatorZxcvbn && c.Estimator != model.EstimatorHeuristic {
		return ErrUnknownEstimator
	}

	return nil
}

// ApplyProfile overlays a wordlist profile onto the configuration.
// Only fields the profile actually sets are applied, so untouched knobs
// keep their defaults and CLI flags parsed after this call still win.
// Leet uses a pointer in the profile so that an explicit "leet: false"
// is distinguishable from an absent key.
func (c *Config) ApplyProfile(p Profile) {
	if p.Years != "" {
		c.Years = p.Years
	}
	if p.Separators != nil {
		c.Separators = p.Separators
	}
	if p.Leet != nil {
		c.Leet = *p.Leet
	}
	if p.LeetMax != 0 {
		c.LeetMax = p.LeetMax
	}
	if p.MaxSize != 0 {
		c.MaxSize = p.MaxSize
	}
	if p.Output != "" {
		c.OutputPath = p.Output
	}
}
