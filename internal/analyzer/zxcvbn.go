package analyzer

import (
	"fmt"

	"github.com/nao1215/passaudit/internal/model"
	zxcvbn "github.com/ccojocar/zxcvbn-go"
)

// ZxcvbnEstimator scores passwords with the zxcvbn pattern matcher. It
// recognizes dictionary words (with leetspeak variants), keyboard walks,
// repeats, sequences, and dates, and charges each matched pattern what an
// informed attacker would actually pay to guess it.
type ZxcvbnEstimator struct{}

// NewZxcvbnEstimator creates a new ZxcvbnEstimator.
func NewZxcvbnEstimator() *ZxcvbnEstimator {
	return &ZxcvbnEstimator{}
}

// Name returns the estimator name recorded in reports.
func (e *ZxcvbnEstimator) Name() string {
	return model.EstimatorZxcvbn
}

// Estimate scores the password with pattern matching.
//
// The underlying matcher panics on some exotic inputs (its date matcher
// indexes multibyte strings by byte). The panic is recovered and returned
// as an error so the Analyzer can fall back to the heuristic estimator
// instead of crashing a batch run.
func (e *ZxcvbnEstimator) Estimate(password string, userInputs []string) (est *Estimate, err error) {
	defer func() {
		if r := recover(); r != nil {
			est = nil
			err = fmt.Errorf("zxcvbn estimator panicked: %v", r)
		}
	}()

	strength := zxcvbn.PasswordStrength(password, userInputs)

	est = &Estimate{
		Score:            strength.Score,
		GuessBits:        strength.Entropy,
		CrackTimeSeconds: strength.CrackTime,
		CrackTimeDisplay: strength.CrackTimeDisplay,
	}

	for _, m := range strength.MatchSequence {
		est.Matches = append(est.Matches, model.PatternMatch{
			Kind:       matchKindForPattern(m.Pattern, m.DictionaryName),
			Token:      m.Token,
			Dictionary: m.DictionaryName,
			GuessBits:  m.Entropy,
		})
	}

	adviseFromMatches(est)
	return est, nil
}

// Ensure ZxcvbnEstimator implements Estimator.
var _ Estimator = (*ZxcvbnEstimator)(nil)
