package analyzer

import (
	"fmt"
	"math"
)

// OfflineSlowHashRate is the assumed guessing rate in guesses per second for
// crack-time estimates: an offline attack against a slow hash (bcrypt,
// scrypt, argon2) on commodity hardware. Estimates derived from entropy bits
// use this rate so heuristic results stay comparable across runs.
const OfflineSlowHashRate = 1e4

// Time unit boundaries for crack-time display.
const (
	secondsPerMinute  = 60
	secondsPerHour    = 60 * secondsPerMinute
	secondsPerDay     = 24 * secondsPerHour
	secondsPerMonth   = 31 * secondsPerDay
	secondsPerYear    = 365 * secondsPerDay
	secondsPerCentury = 100 * secondsPerYear
)

// CrackTimeFromBits converts entropy bits into expected cracking seconds at
// OfflineSlowHashRate. The expected attempt count is half the search space,
// hence 2^(bits-1).
func CrackTimeFromBits(bits float64) float64 {
	if bits <= 0 {
		return 0
	}
	return math.Pow(2, bits-1) / OfflineSlowHashRate
}

// DisplayCrackTime renders cracking seconds as a coarse human-readable
// duration, saturating at "centuries".
func DisplayCrackTime(seconds float64) string {
	switch {
	case seconds < 1:
		return "instant"
	case seconds < secondsPerMinute:
		return fmt.Sprintf("%.0f seconds", math.Ceil(seconds))
	case seconds < secondsPerHour:
		return fmt.Sprintf("%.0f minutes", math.Ceil(seconds/secondsPerMinute))
	case seconds < secondsPerDay:
		return fmt.Sprintf("%.0f hours", math.Ceil(seconds/secondsPerHour))
	case seconds < secondsPerMonth:
		return fmt.Sprintf("%.0f days", math.Ceil(seconds/secondsPerDay))
	case seconds < secondsPerYear:
		return fmt.Sprintf("%.0f months", math.Ceil(seconds/secondsPerMonth))
	case seconds < secondsPerCentury:
		return fmt.Sprintf("%.0f years", math.Ceil(seconds/secondsPerYear))
	default:
		return "centuries"
	}
}
