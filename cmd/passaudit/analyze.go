package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/nao1215/passaudit/internal/analyzer"
	"github.com/nao1215/passaudit/internal/config"
	"github.com/nao1215/passaudit/internal/database"
	"github.com/nao1215/passaudit/internal/log"
	"github.com/nao1215/passaudit/internal/model"
	"github.com/nao1215/passaudit/internal/report"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [password...]",
		Short: "Analyze password strength",
		Long: `Analyze estimates how resistant passwords are to guessing attacks.

Each password is scored 0-4 using pattern matching (dictionary words,
keyboard walks, dates, repeats, sequences). The report includes guess and
Shannon entropy, an estimated offline crack time, and concrete improvement
advice. Supplied personal context (names, pets, dates) is fed to the
matcher and caps the score when the password contains it.

Passwords are identified by a truncated SHA3-256 fingerprint in reports,
logs, and the audit database. The raw password is never stored.

Examples:
  # Analyze a single password
  passaudit analyze 'Tr0ub4dor&3'

  # Prompt for the password without echoing it
  passaudit analyze

  # Analyze with personal context keywords
  passaudit analyze -i alice,rex,1990 'alicerex90'

  # Analyze a password list file with 20 workers
  passaudit analyze -l passwords.txt -c 20

  # Write a JSON report to a file, skip the audit database
  passaudit analyze -j -o report.json --no-save 'hunter2'`,
		Args: cobra.ArbitraryArgs,
		RunE: runAnalyzeCmd,
	}

	// Analysis input flags
	cmd.Flags().StringSliceP("inputs", "i", nil,
		"Personal context keywords matched against the password (names, pets, dates)")
	cmd.Flags().StringP("list", "l", "",
		"File with one password per line for batch analysis")
	cmd.Flags().IntP("concurrency", "c", config.DefaultConcurrency,
		"Number of concurrent analyses in batch mode")

	// Estimator flags
	cmd.Flags().Bool("basic", false,
		"Use the naive charset entropy estimator instead of pattern matching")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	// Database flags
	cmd.Flags().Bool("no-save", false,
		"Do not record the analysis in the audit database")
	cmd.Flags().String("db-dir", "",
		"Directory for the audit database (default: XDG data directory)")

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	// Build config from flags
	cfg, err := buildAnalyzeConfig(cmd)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	// Collect passwords before installing signal handling so an aborted
	// prompt does not leave a handler behind
	passwords, err := resolvePasswords(cfg, args)
	if err != nil {
		return err
	}

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runAnalyze(ctx, cfg, passwords, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildAnalyzeConfig creates a Config from analyze command flags.
func buildAnalyzeConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	// Get flag values
	var err error

	cfg.Inputs, err = cmd.Flags().GetStringSlice("inputs")
	if err != nil {
		return nil, err
	}

	cfg.ListFile, err = cmd.Flags().GetString("list")
	if err != nil {
		return nil, err
	}

	cfg.Concurrency, err = cmd.Flags().GetInt("concurrency")
	if err != nil {
		return nil, err
	}

	basic, err := cmd.Flags().GetBool("basic")
	if err != nil {
		return nil, err
	}
	if basic {
		cfg.Estimator = model.EstimatorHeuristic
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	noSave, err := cmd.Flags().GetBool("no-save")
	if err != nil {
		return nil, err
	}
	cfg.SaveToDB = !noSave

	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return nil, err
	}
	if dbDir != "" {
		cfg.DBDir = dbDir
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// setupLogger creates a structured logger based on verbosity setting.
// All CLI logging flows through the sanitizing handler so passwords and
// other secrets never reach the log stream.
func setupLogger(verbose bool) *slog.Logger {
	return log.NewSecureLogger(os.Stderr, verbose)
}

// resolvePasswords collects passwords from positional arguments and the
// list file. With neither present, a single password is read from stdin.
func resolvePasswords(cfg *config.Config, args []string) ([]string, error) {
	passwords := make([]string, 0, len(args))
	passwords = append(passwords, args...)

	if cfg.ListFile != "" {
		fromFile, err := readPasswordList(cfg.ListFile)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, fromFile...)
	}

	if len(passwords) > 0 {
		return passwords, nil
	}

	password, err := promptPassword()
	if err != nil {
		return nil, err
	}
	return []string{password}, nil
}

// readPasswordList reads one password per line from a file.
// Blank lines are skipped. Lines are kept verbatim apart from a trailing
// carriage return, since whitespace may be part of the password.
func readPasswordList(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided list path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open password list: %w", err)
	}
	defer f.Close()

	var passwords []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		passwords = append(passwords, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read password list: %w", err)
	}

	return passwords, nil
}

// promptPassword reads a password from stdin. When stdin is a terminal the
// input is read without echo so the password does not land in scrollback.
// Piped input reads a single line instead.
func promptPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, "Password: ")
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(raw), nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return "", errors.New("no password provided on stdin")
	}
	return strings.TrimSuffix(scanner.Text(), "\r"), nil
}

// runAnalyze executes the analysis.
func runAnalyze(ctx context.Context, cfg *config.Config, passwords []string, logger *slog.Logger) error {
	if len(passwords) == 0 {
		return errors.New("no passwords provided (pass them as arguments or use --list)")
	}

	logger.Info("starting analysis",
		"passwords", len(passwords),
		"estimator", cfg.Estimator,
		"saveToDB", cfg.SaveToDB,
	)

	// Open database connection if saving is enabled
	var db *database.AuditDB
	if cfg.SaveToDB {
		var err error
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		logger.Info("database opened", "dir", cfg.DBDir)
	}

	a := newAnalyzerFromConfig(cfg, logger)

	if len(passwords) == 1 {
		return runSingleAnalysis(ctx, cfg, a, passwords[0], db, logger)
	}
	return runBatchAnalysis(ctx, cfg, a, passwords, db, logger)
}

// newAnalyzerFromConfig builds an Analyzer honoring the estimator selection.
func newAnalyzerFromConfig(cfg *config.Config, logger *slog.Logger) *analyzer.Analyzer {
	opts := []analyzer.Option{analyzer.WithLogger(logger)}
	if cfg.Estimator == model.EstimatorHeuristic {
		opts = append(opts, analyzer.WithEstimator(analyzer.NewHeuristicEstimator()))
	}
	return analyzer.NewAnalyzer(opts...)
}

// runSingleAnalysis analyzes one password and writes the report.
func runSingleAnalysis(ctx context.Context, cfg *config.Config, a *analyzer.Analyzer, password string, db *database.AuditDB, logger *slog.Logger) error {
	result, err := a.Analyze(ctx, password, cfg.Inputs)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if err := outputAnalysisReport(cfg, result); err != nil {
		return err
	}

	return saveAnalysisReport(ctx, db, result, logger)
}

// runBatchAnalysis analyzes multiple passwords concurrently and writes an
// aggregate report.
func runBatchAnalysis(ctx context.Context, cfg *config.Config, a *analyzer.Analyzer, passwords []string, db *database.AuditDB, logger *slog.Logger) error {
	fmt.Printf("Starting batch analysis of %d passwords (concurrency: %d)...\n\n",
		len(passwords), cfg.Concurrency)

	startTime := time.Now()

	ba := analyzer.NewBatchAnalyzer(a,
		analyzer.WithConcurrency(cfg.Concurrency),
		analyzer.WithBatchLogger(logger),
	)

	// Collect by input index so the aggregate report and the database rows
	// follow input order even though analyses complete out of order.
	results := make([]*model.AnalysisReport, len(passwords))

	// Process with callback for streaming progress
	var mu sync.Mutex
	err := ba.ProcessBatchWithCallback(ctx, passwords, cfg.Inputs, func(result *model.AnalysisReport, index int) {
		mu.Lock()
		defer mu.Unlock()

		if result == nil {
			fmt.Printf("[%d/%d] Analysis failed\n", index+1, len(passwords))
			return
		}

		results[index] = result
		fmt.Printf("[%d/%d] %s  score %d/%d  %s\n",
			index+1, len(passwords), result.Fingerprint, result.Score, model.MaxScore, result.CrackTimeDisplay)
	})
	if err != nil {
		return err
	}

	source := cfg.ListFile
	if source == "" {
		source = "arguments"
	}
	batch := model.NewBatchReport(source)

	for _, result := range results {
		if result == nil {
			continue
		}
		batch.Add(result)

		if err := saveAnalysisReport(ctx, db, result, logger); err != nil {
			logger.Error("failed to save analysis", "fingerprint", result.Fingerprint, "error", err)
		}
	}

	elapsed := time.Since(startTime)
	fmt.Printf("\nBatch analysis completed in %s\n", elapsed.Round(time.Millisecond))

	return outputBatchReport(cfg, batch)
}

// reportDestination opens the configured report destination.
// The returned cleanup closes the file when one was opened; writing to
// stdout needs no cleanup.
func reportDestination(cfg *config.Config) (*os.File, func(), error) {
	if cfg.ReportFile == "" {
		return os.Stdout, func() {}, nil
	}

	// Create directories if they don't exist
	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Create/overwrite the output file with secure permissions (0600)
	// Reports may contain sensitive information that should only be readable by the owner
	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// newReportWriter selects the report writer for the configured format.
func newReportWriter(cfg *config.Config, output io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}
}

// outputAnalysisReport writes a single analysis report in the configured
// format to the configured destination.
func outputAnalysisReport(cfg *config.Config, result *model.AnalysisReport) error {
	output, cleanup, err := reportDestination(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	_, err = newReportWriter(cfg, output).Write(result)
	return err
}

// outputBatchReport writes an aggregated batch report in the configured
// format to the configured destination.
func outputBatchReport(cfg *config.Config, batch *model.BatchReport) error {
	output, cleanup, err := reportDestination(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	_, err = newReportWriter(cfg, output).WriteBatch(batch)
	return err
}

// saveAnalysisReport persists an analysis to the audit database.
// A nil database means saving is disabled and the call is a no-op.
func saveAnalysisReport(ctx context.Context, db *database.AuditDB, result *model.AnalysisReport, logger *slog.Logger) error {
	if db == nil {
		return nil
	}

	if err := db.SaveAnalysis(ctx, result); err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}

	logger.Info("analysis saved to database", "fingerprint", result.Fingerprint)
	return nil
}
