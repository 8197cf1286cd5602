package model

import "time"

// Estimator names recorded in analysis reports.
const (
	// EstimatorZxcvbn is the pattern-matching estimator.
	EstimatorZxcvbn = "zxcvbn"
	// EstimatorHeuristic is the naive charset-entropy estimator.
	EstimatorHeuristic = "heuristic"
)

// AnalysisReport is the result of a single password strength analysis.
//
// Design decision: We use a single flat struct rather than nesting
// estimator-specific sub-structs to simplify serialization and database
// storage. The Password field is kept in memory for display decisions but
// is excluded from JSON so that no serialized report can leak it; the
// truncated fingerprint identifies the password instead.
type AnalysisReport struct {
	// === Identity ===

	// Password is the analyzed password. Never serialized, never logged.
	Password string `json:"-"`

	// Fingerprint is a truncated SHA3-256 digest of the password (12 hex
	// chars). Truncation keeps it useful for correlating audit history
	// while making it useless as a verifier for the original password.
	Fingerprint string `json:"fingerprint"`

	// DateAnalyzed is when the analysis was performed.
	DateAnalyzed time.Time `json:"date_analyzed"`

	// Length is the password length in runes.
	Length int `json:"length"`

	// === Scoring ===

	// Score is the bounded 0-4 strength score.
	Score int `json:"score"`

	// Level is the strength classification derived from Score.
	Level StrengthLevel `json:"level"`

	// LevelText is the human-readable level.
	LevelText string `json:"level_text"`

	// ShannonBits is the Shannon entropy of the character distribution,
	// scaled by length. It measures character variety, not guessability.
	ShannonBits float64 `json:"shannon_bits"`

	// GuessBits is the estimator's guess entropy: how many bits of work an
	// informed attacker needs. Always at or below the theoretical maximum.
	GuessBits float64 `json:"guess_bits"`

	// CrackTimeSeconds estimates offline cracking time in seconds.
	CrackTimeSeconds float64 `json:"crack_time_seconds"`

	// CrackTimeDisplay is the human-readable crack time.
	CrackTimeDisplay string `json:"crack_time_display"`

	// === Estimator Metadata ===

	// Estimator names the estimator that produced the score.
	Estimator string `json:"estimator"`

	// Degraded is true when the primary estimator failed and the naive
	// fallback produced this result.
	Degraded bool `json:"degraded,omitempty"`

	// === Findings ===

	// Matches lists the weak patterns found in the password.
	Matches []PatternMatch `json:"matches,omitempty"`

	// UserInputHit is true when the password contains one of the supplied
	// personal context tokens.
	UserInputHit bool `json:"user_input_hit,omitempty"`

	// Warning is the dominant weakness, phrased for humans. Empty when no
	// weak pattern was found.
	Warning string `json:"warning,omitempty"`

	// Suggestions are remediation hints ordered by severity.
	Suggestions []string `json:"suggestions,omitempty"`
}

// PatternMatch describes one weak pattern found inside the password.
type PatternMatch struct {
	// Kind is the weakness kind. This maps to the advice table in advice.go.
	Kind string `json:"kind"`

	// Token is the matched substring. Excluded from JSON because a matched
	// token is password material.
	Token string `json:"-"`

	// Dictionary names the wordlist the token was found in, if any.
	Dictionary string `json:"dictionary,omitempty"`

	// GuessBits is the entropy contribution of this match.
	GuessBits float64 `json:"guess_bits"`
}

// NewAnalysisReport creates an empty report for the given password with the
// analysis timestamp set.
func NewAnalysisReport(password string) *AnalysisReport {
	return &AnalysisReport{
		Password:     password,
		DateAnalyzed: time.Now(),
		Length:       len([]rune(password)),
	}
}

// SetScore records the score and the derived level fields together so the
// three can never disagree.
func (r *AnalysisReport) SetScore(score int) {
	r.Score = ClampScore(score)
	r.Level = LevelFromScore(score)
	r.LevelText = r.Level.String()
}

// AddMatch appends a weak-pattern finding.
func (r *AnalysisReport) AddMatch(kind, token, dictionary string, guessBits float64) {
	r.Matches = append(r.Matches, PatternMatch{
		Kind:       kind,
		Token:      token,
		Dictionary: dictionary,
		GuessBits:  guessBits,
	})
}

// AddSuggestion appends a remediation hint, skipping duplicates.
func (r *AnalysisReport) AddSuggestion(s string) {
	if s == "" {
		return
	}
	for _, existing := range r.Suggestions {
		if existing == s {
			return
		}
	}
	r.Suggestions = append(r.Suggestions, s)
}

// IsWeak returns true for reports that warrant immediate attention.
func (r *AnalysisReport) IsWeak() bool {
	return r.Level <= LevelWeak
}
