package analyzer

import "github.com/nao1215/passaudit/internal/model"

// Estimator defines the interface for password strength estimators.
// Each scoring strategy must provide this interface to be used by the
// Analyzer, directly or as a fallback.
//
// Design decision: We use an interface rather than a concrete type because:
//  1. The pattern matcher and the naive heuristic share no implementation
//  2. Allows for easy mocking in tests
//  3. The Analyzer can chain estimators for degraded-mode fallback
type Estimator interface {
	// Estimate scores a single password. userInputs are personal context
	// tokens (names, pets, dates) that an informed attacker would try
	// first; estimators that support them must rank such matches cheap.
	//
	// Implementations must be safe for concurrent use: batch analysis
	// calls Estimate from multiple goroutines.
	Estimate(password string, userInputs []string) (*Estimate, error)

	// Name returns the estimator name recorded in reports
	// (e.g., "zxcvbn", "heuristic").
	Name() string
}

// Estimate contains the result of a single strength estimation.
// It aggregates the score, the entropy accounting, and any weak patterns
// the estimator recognized.
//
// Design decision: We use a generic result type rather than per-estimator
// results because:
//  1. The Analyzer needs a uniform way to assemble reports
//  2. Common fields like score and crack time apply to every strategy
//  3. Strategy-specific detail fits in the Matches slice
type Estimate struct {
	// Score is the bounded 0-4 strength score.
	Score int

	// GuessBits is the estimated work for an informed attacker, in bits.
	GuessBits float64

	// CrackTimeSeconds estimates offline cracking time in seconds.
	CrackTimeSeconds float64

	// CrackTimeDisplay is the human-readable crack time.
	CrackTimeDisplay string

	// Matches lists the weak patterns found, in password order.
	// Empty for estimators that do no pattern matching.
	Matches []model.PatternMatch

	// Warning is the dominant weakness, phrased for humans.
	// Empty when the estimator found nothing noteworthy.
	Warning string

	// Suggestions are remediation hints for the found weaknesses.
	Suggestions []string
}
