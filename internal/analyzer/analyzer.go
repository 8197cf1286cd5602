package analyzer

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nao1215/passaudit/internal/model"
	"golang.org/x/crypto/sha3"
)

// Analyzer errors.
var (
	// ErrEmptyPassword is returned when the password to analyze is empty.
	ErrEmptyPassword = errors.New("password must not be empty")
)

const (
	// fingerprintLen is the hex length of a truncated fingerprint.
	// 48 bits: enough to correlate audit history, too little to act as a
	// verifier for the original password.
	fingerprintLen = 12

	// minRecommendedLength is the length below which a password earns a
	// too-short warning regardless of its composition.
	minRecommendedLength = 8

	// minContainTokenLength is the shortest context token considered for
	// the containment check. Shorter tokens hit constantly by accident.
	minContainTokenLength = 3
)

// Fingerprint returns the truncated SHA3-256 fingerprint of a password.
// This is the only password-derived identifier that may appear in logs,
// reports, and the audit database.
func Fingerprint(password string) string {
	sum := sha3.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])[:fingerprintLen]
}

// Analyzer performs password strength analysis. It runs the primary
// estimator, falls back to the secondary on failure, and assembles the
// full analysis report with fingerprint, entropy accounting, and advice.
//
// An Analyzer is safe for concurrent use; estimators hold no per-call
// state.
type Analyzer struct {
	// estimator is the primary scoring strategy.
	estimator Estimator

	// fallback is used when the primary estimator returns an error.
	// May be nil, in which case the primary error is returned as is.
	fallback Estimator

	// logger is used for analysis-level logging.
	logger *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithEstimator sets the primary estimator. Default is the zxcvbn
// pattern matcher.
func WithEstimator(e Estimator) Option {
	return func(a *Analyzer) {
		if e != nil {
			a.estimator = e
		}
	}
}

// WithFallback sets the fallback estimator used when the primary fails.
// Pass nil to disable falling back.
func WithFallback(e Estimator) Option {
	return func(a *Analyzer) {
		a.fallback = e
	}
}

// WithLogger sets a custom logger for analysis logging.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAnalyzer creates an Analyzer with the zxcvbn estimator as primary and
// the heuristic estimator as fallback.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		estimator: NewZxcvbnEstimator(),
		fallback:  NewHeuristicEstimator(),
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Analyze performs a full strength analysis of a single password.
// userInputs are personal context tokens fed to the estimator and checked
// for literal containment.
//
// The context is checked before estimation so batch runs stop promptly on
// cancellation; estimation itself is CPU-bound and brief.
func (a *Analyzer) Analyze(ctx context.Context, password string, userInputs []string) (*model.AnalysisReport, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	report := model.NewAnalysisReport(password)
	report.Fingerprint = Fingerprint(password)
	report.ShannonBits = ShannonEntropy(password)

	est, err := a.estimator.Estimate(password, userInputs)
	estimatorName := a.estimator.Name()
	if err != nil {
		if a.fallback == nil {
			return nil, fmt.Errorf("estimate failed: %w", err)
		}

		a.logger.Warn("primary estimator failed, using fallback",
			"estimator", estimatorName,
			"fallback", a.fallback.Name(),
			"fingerprint", report.Fingerprint,
			"error", err,
		)

		est, err = a.fallback.Estimate(password, userInputs)
		if err != nil {
			return nil, fmt.Errorf("fallback estimate failed: %w", err)
		}
		estimatorName = a.fallback.Name()
		report.Degraded = true
	}

	report.SetScore(est.Score)
	report.GuessBits = est.GuessBits
	report.CrackTimeSeconds = est.CrackTimeSeconds
	report.CrackTimeDisplay = est.CrackTimeDisplay
	report.Estimator = estimatorName
	report.Matches = est.Matches
	report.Warning = est.Warning
	for _, s := range est.Suggestions {
		report.AddSuggestion(s)
	}

	a.applyContainsCheck(report, userInputs)
	a.applyLengthCheck(report)

	a.logger.Debug("analysis complete",
		"fingerprint", report.Fingerprint,
		"score", report.Score,
		"estimator", report.Estimator,
		"degraded", report.Degraded,
	)

	return report, nil
}

// applyContainsCheck caps the score when the password literally contains a
// personal context token. The pattern matcher already ranks user inputs as
// cheap guesses, but an exact containment is a targeted-wordlist hit and
// deserves the explicit warning and the hard cap.
func (a *Analyzer) applyContainsCheck(report *model.AnalysisReport, userInputs []string) {
	lower := strings.ToLower(report.Password)
	for _, input := range userInputs {
		token := strings.ToLower(strings.TrimSpace(input))
		if len(token) < minContainTokenLength || !strings.Contains(lower, token) {
			continue
		}

		report.UserInputHit = true
		if report.Score > 1 {
			report.SetScore(1)
		}

		info := model.GetAdviceInfo("user_input")
		report.Warning = info.Impact
		report.AddSuggestion(info.Recommendation)
		report.AddMatch("user_input", token, "user_inputs", 0)
		return
	}
}

// applyLengthCheck adds too-short advice for passwords under the
// recommended minimum. The score is left to the estimator; short random
// passwords already score low.
func (a *Analyzer) applyLengthCheck(report *model.AnalysisReport) {
	if report.Length >= minRecommendedLength {
		return
	}

	info := model.GetAdviceInfo("too_short")
	if report.Warning == "" {
		report.Warning = info.Impact
	}
	report.AddSuggestion(info.Recommendation)
}
