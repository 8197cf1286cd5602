package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages. Using errors.New() here rather than fmt.Errorf()
// because we don't need to include dynamic values in these messages.
var (
	// ErrNoInputs is returned when wordlist generation is requested without
	// seed keywords. Profiles supply generation knobs only, so the --inputs
	// flag is always required for the wordlist command.
	ErrNoInputs = errors.New("no seed keywords specified: provide --inputs")

	// ErrInvalidConcurrency is returned when the batch concurrency is not
	// positive. A concurrency of zero would mean no workers, effectively
	// stopping batch analysis.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrInvalidMaxSize is returned when the wordlist candidate cap is not
	// positive. A zero cap would always produce an empty wordlist.
	ErrInvalidMaxSize = errors.New("invalid max size: must be positive")

	// ErrInvalidLeetBudget is returned when the per-token leetspeak variant
	// budget is not positive. The budget admits at least the raw token, so
	// zero is never meaningful; use --no-leet to disable substitution.
	ErrInvalidLeetBudget = errors.New("invalid leet budget: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrUnknownEstimator is returned when the estimator name matches no
	// known implementation.
	ErrUnknownEstimator = errors.New(`unknown estimator: must be "zxcvbn" or "heuristic"`)

	// ErrProfileNotFound is returned when the profile named via --profile
	// does not exist in the configuration file.
	ErrProfileNotFound = errors.New("profile not found in configuration file")
)
