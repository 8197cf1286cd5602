package wordlist

import (
	"testing"
	"time"
)

// equalYears reports whether two year slices are identical.
func equalYears(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestParseYears tests year spec parsing.
func TestParseYears(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		spec     string
		expected []int
	}{
		{"single year", "2024", []int{2024}},
		{"year list", "2024,1999", []int{1999, 2024}},
		{"inclusive range", "1990-1992", []int{1990, 1991, 1992}},
		{"range and year mixed", "1990-1992,2024", []int{1990, 1991, 1992, 2024}},
		{"duplicates collapse", "2024,2020,2024,2018-2019", []int{2018, 2019, 2020, 2024}},
		{"whitespace tolerated", " 1990 - 1992 , 2024 ", []int{1990, 1991, 1992, 2024}},
		{"invalid entries skipped", "2024,abc,17joy", []int{2024}},
		{"below bound dropped", "1890-1902", []int{1900, 1901, 1902}},
		{"out of bounds entirely", "2200", []int{}},
		{"out of bounds range", "1500-1600", []int{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := ParseYears(tc.spec)
			if !equalYears(got, tc.expected) {
				t.Errorf("ParseYears(%q) = %v, expected %v", tc.spec, got, tc.expected)
			}
		})
	}
}

// TestParseYearsDefaultWindow tests the fallback to a window around the
// current year.
func TestParseYearsDefaultWindow(t *testing.T) {
	t.Parallel()

	current := time.Now().Year()
	window := []int{current - 1, current, current + 1}

	testCases := []struct {
		name string
		spec string
	}{
		{"empty spec", ""},
		{"whitespace spec", "   "},
		{"commas only", ",,,"},
		{"nothing parses", "abc,xyz"},
		{"lone dash", "-"},
		{"reversed range", "1995-1990"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := ParseYears(tc.spec)
			if !equalYears(got, window) {
				t.Errorf("ParseYears(%q) = %v, expected the window %v", tc.spec, got, window)
			}
		})
	}
}

// TestParseYearsHugeRange tests that an absurd range is clamped instead of
// expanded entry by entry.
func TestParseYearsHugeRange(t *testing.T) {
	t.Parallel()

	got := ParseYears("1990-99999999")
	if len(got) != MaxYear-1990+1 {
		t.Fatalf("ParseYears produced %d years, expected %d", len(got), MaxYear-1990+1)
	}
	if got[0] != 1990 || got[len(got)-1] != MaxYear {
		t.Errorf("expected years from 1990 to %d, got [%d..%d]", MaxYear, got[0], got[len(got)-1])
	}
}
