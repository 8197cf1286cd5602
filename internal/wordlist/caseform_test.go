package wordlist

import "testing"

// TestCaseVariants tests case expansion of tokens.
func TestCaseVariants(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		token    string
		expected []string
	}{
		{"capitalized token", "Rex", []string{"rex", "REX", "Rex"}},
		{"lowercase token", "rex", []string{"rex", "REX", "Rex"}},
		{"uppercase token", "REX", []string{"rex", "REX", "Rex"}},
		{"mixed case keeps capitalized form", "rexDOG", []string{"rexdog", "REXDOG", "Rexdog", "RexDOG"}},
		{"digits only", "2024", []string{"2024"}},
		{"digit prefix skips capitalized form", "9lives", []string{"9lives", "9LIVES", "9Lives"}},
		{"empty token", "", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := CaseVariants(tc.token)
			if len(got) != len(tc.expected) {
				t.Fatalf("CaseVariants(%q) = %v, expected %v", tc.token, got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("CaseVariants(%q)[%d] = %q, expected %q", tc.token, i, got[i], tc.expected[i])
				}
			}
		})
	}
}

// TestCaseVariantsUnicode tests case expansion beyond ASCII.
func TestCaseVariantsUnicode(t *testing.T) {
	t.Parallel()

	got := CaseVariants("über")
	expected := []string{"über", "ÜBER", "Über"}
	if len(got) != len(expected) {
		t.Fatalf("CaseVariants(%q) = %v, expected %v", "über", got, expected)
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Errorf("CaseVariants(%q)[%d] = %q, expected %q", "über", i, got[i], expected[i])
		}
	}
}

// TestCaseVariantsNoDuplicates tests that variants never repeat.
func TestCaseVariantsNoDuplicates(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"rex", "Rex", "REX", "rExDoG", "a", "x9z"} {
		seen := make(map[string]bool)
		for _, v := range CaseVariants(token) {
			if seen[v] {
				t.Errorf("CaseVariants(%q) contains duplicate %q", token, v)
			}
			seen[v] = true
		}
	}
}
