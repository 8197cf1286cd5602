package model

// StrengthLevel represents the bounded strength classification of a password.
// It mirrors the 0-4 score range used by pattern-based strength estimators,
// so a score maps directly onto a level.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The String() method provides
// human-readable output when needed.
type StrengthLevel int

const (
	// LevelVeryWeak indicates a password crackable in moments.
	// Examples: top dictionary entries, short repeats, keyboard walks.
	LevelVeryWeak StrengthLevel = iota

	// LevelWeak indicates a password that survives only casual guessing.
	// Examples: a dictionary word with a trailing year, short leetspeak.
	LevelWeak

	// LevelFair indicates a password that resists online attacks but not
	// dedicated offline cracking.
	LevelFair

	// LevelStrong indicates a password safe against most offline attacks
	// with standard hardware.
	LevelStrong

	// LevelVeryStrong indicates a password beyond realistic cracking effort.
	LevelVeryStrong
)

// String returns a human-readable representation of the strength level.
func (l StrengthLevel) String() string {
	switch l {
	case LevelVeryWeak:
		return "VERY WEAK"
	case LevelWeak:
		return "WEAK"
	case LevelFair:
		return "FAIR"
	case LevelStrong:
		return "STRONG"
	case LevelVeryStrong:
		return "VERY STRONG"
	default:
		return "UNKNOWN"
	}
}

// MinScore and MaxScore bound the estimator score range. Scores from any
// estimator are clamped into this range before classification.
const (
	MinScore = 0
	MaxScore = 4
)

// ClampScore forces a raw estimator score into the [MinScore, MaxScore] range.
func ClampScore(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// LevelFromScore converts an estimator score to a StrengthLevel.
// Out-of-range scores are clamped rather than rejected so that a
// misbehaving estimator can never produce an unclassifiable report.
func LevelFromScore(score int) StrengthLevel {
	return StrengthLevel(ClampScore(score))
}
