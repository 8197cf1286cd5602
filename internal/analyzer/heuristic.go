package analyzer

import (
	"unicode"

	"github.com/nao1215/passaudit/internal/model"
)

// charsetBitsPerScore is the entropy step between heuristic score levels:
// score = min(4, bits/20). 80 bits of naive charset entropy maxes out.
const charsetBitsPerScore = 20

// HeuristicEstimator scores passwords from charset size and length alone.
// It is the degraded mode used when pattern matching is unavailable or
// fails: cheap, dependency-free, and deliberately optimistic, since it
// cannot see dictionary words or keyboard patterns.
type HeuristicEstimator struct{}

// NewHeuristicEstimator creates a new HeuristicEstimator.
func NewHeuristicEstimator() *HeuristicEstimator {
	return &HeuristicEstimator{}
}

// Name returns the estimator name recorded in reports.
func (e *HeuristicEstimator) Name() string {
	return model.EstimatorHeuristic
}

// Estimate scores the password as log2(distinct chars) * length bits,
// one score level per 20 bits, capped at 4.
func (e *HeuristicEstimator) Estimate(password string, _ []string) (*Estimate, error) {
	bits := CharsetBits(password)

	score := int(bits) / charsetBitsPerScore
	if score > model.MaxScore {
		score = model.MaxScore
	}

	seconds := CrackTimeFromBits(bits)
	est := &Estimate{
		Score:            score,
		GuessBits:        bits,
		CrackTimeSeconds: seconds,
		CrackTimeDisplay: DisplayCrackTime(seconds),
	}

	e.advise(est, password)
	return est, nil
}

// advise adds character-class advice for low scores. Without pattern
// matching this is the only feedback the heuristic can give honestly.
func (e *HeuristicEstimator) advise(est *Estimate, password string) {
	if est.Score > 2 || password == "" {
		return
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	classes := 0
	for _, present := range []bool{hasUpper, hasLower, hasDigit, hasSymbol} {
		if present {
			classes++
		}
	}

	var kind string
	switch {
	case hasDigit && classes == 1:
		kind = "digits_only"
	case classes == 1:
		kind = "single_class"
	case !hasSymbol:
		kind = "no_symbols"
	default:
		return
	}

	info := model.GetAdviceInfo(kind)
	est.Warning = info.Impact
	est.Suggestions = appendSuggestion(est.Suggestions, info.Recommendation)
}

// Ensure HeuristicEstimator implements Estimator.
var _ Estimator = (*HeuristicEstimator)(nil)
