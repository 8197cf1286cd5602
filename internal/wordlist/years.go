package wordlist

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	// MinYear is the lowest year kept by the parser. Anything below it is
	// noise rather than a plausible birth or event year.
	MinYear = 1900

	// MaxYear is the highest year kept by the parser.
	MaxYear = 2100
)

// ParseYears parses a year spec: comma-separated entries that are either a
// single year ("2024") or an inclusive range ("1990-1995"). Entries that do
// not parse are skipped silently. When no entry parses at all, the result
// defaults to a three-year window centered on the current year.
//
// The returned years are bounded to [MinYear, MaxYear], deduplicated, and
// sorted ascending. Note that a spec that parses but falls entirely outside
// the bounds ("1500-1600") yields an empty result, not the default window.
func ParseYears(spec string) []int {
	var years []int
	parsedAny := false

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if from, to, isRange := strings.Cut(part, "-"); isRange {
			start, errFrom := strconv.Atoi(strings.TrimSpace(from))
			end, errTo := strconv.Atoi(strings.TrimSpace(to))
			if errFrom != nil || errTo != nil || start > end {
				continue
			}
			parsedAny = true

			// The bounds filter below drops anything outside
			// [MinYear, MaxYear] anyway; clamping first keeps a spec like
			// "1990-99999999" from allocating millions of entries.
			if start < MinYear {
				start = MinYear
			}
			if end > MaxYear {
				end = MaxYear
			}
			for y := start; y <= end; y++ {
				years = append(years, y)
			}
			continue
		}

		y, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		parsedAny = true
		years = append(years, y)
	}

	if !parsedAny {
		current := time.Now().Year()
		years = []int{current - 1, current, current + 1}
	}

	return normalizeYears(years)
}

// normalizeYears bounds years to [MinYear, MaxYear], deduplicates, and
// sorts ascending.
func normalizeYears(years []int) []int {
	seen := make(map[int]struct{}, len(years))
	out := make([]int, 0, len(years))
	for _, y := range years {
		if y < MinYear || y > MaxYear {
			continue
		}
		if _, ok := seen[y]; ok {
			continue
		}
		seen[y] = struct{}{}
		out = append(out, y)
	}

	sort.Ints(out)
	return out
}
