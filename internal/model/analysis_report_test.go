package model

import (
	"encoding/json"
	"strings"
	"testing"
)

// TestNewAnalysisReport tests report construction.
func TestNewAnalysisReport(t *testing.T) {
	t.Parallel()

	t.Run("sets password, timestamp and rune length", func(t *testing.T) {
		t.Parallel()

		r := NewAnalysisReport("pässwörd")

		if r.Password != "pässwörd" {
			t.Errorf("expected password to be retained in memory, got %q", r.Password)
		}
		if r.DateAnalyzed.IsZero() {
			t.Error("expected DateAnalyzed to be set")
		}
		if r.Length != 8 {
			t.Errorf("expected rune length 8, got %d", r.Length)
		}
	})
}

// TestAnalysisReportSetScore tests that score, level, and level text stay
// consistent.
func TestAnalysisReportSetScore(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		score         int
		expectedScore int
		expectedLevel StrengthLevel
	}{
		{"weak score", 1, 1, LevelWeak},
		{"strong score", 3, 3, LevelStrong},
		{"negative score clamps", -2, 0, LevelVeryWeak},
		{"oversized score clamps", 8, 4, LevelVeryStrong},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := NewAnalysisReport("test")
			r.SetScore(tc.score)

			if r.Score != tc.expectedScore {
				t.Errorf("expected score %d, got %d", tc.expectedScore, r.Score)
			}
			if r.Level != tc.expectedLevel {
				t.Errorf("expected level %v, got %v", tc.expectedLevel, r.Level)
			}
			if r.LevelText != tc.expectedLevel.String() {
				t.Errorf("expected level text %q, got %q", tc.expectedLevel.String(), r.LevelText)
			}
		})
	}
}

// TestAnalysisReportAddSuggestion tests duplicate-free suggestion collection.
func TestAnalysisReportAddSuggestion(t *testing.T) {
	t.Parallel()

	r := NewAnalysisReport("test")
	r.AddSuggestion("use a longer password")
	r.AddSuggestion("avoid dictionary words")
	r.AddSuggestion("use a longer password")
	r.AddSuggestion("")

	if len(r.Suggestions) != 2 {
		t.Errorf("expected 2 suggestions, got %d: %v", len(r.Suggestions), r.Suggestions)
	}
}

// TestAnalysisReportIsWeak tests the weak classification boundary.
func TestAnalysisReportIsWeak(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		score    int
		expected bool
	}{
		{0, true},
		{1, true},
		{2, false},
		{3, false},
		{4, false},
	}

	for _, tc := range testCases {
		r := NewAnalysisReport("test")
		r.SetScore(tc.score)
		if r.IsWeak() != tc.expected {
			t.Errorf("IsWeak() with score %d = %v, expected %v", tc.score, r.IsWeak(), tc.expected)
		}
	}
}

// TestAnalysisReportJSONNeverContainsPassword tests that serialization
// excludes password material entirely.
func TestAnalysisReportJSONNeverContainsPassword(t *testing.T) {
	t.Parallel()

	r := NewAnalysisReport("hunter2secret")
	r.SetScore(1)
	r.Fingerprint = "abcdef012345"
	r.AddMatch("dictionary", "hunter2secret", "passwords", 12.5)
	r.Warning = "weak password"

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("failed to marshal report: %v", err)
	}

	if strings.Contains(string(data), "hunter2secret") {
		t.Errorf("serialized report leaks the password: %s", data)
	}
	if !strings.Contains(string(data), "abcdef012345") {
		t.Error("expected fingerprint in serialized report")
	}
	if !strings.Contains(string(data), "dictionary") {
		t.Error("expected match kind in serialized report")
	}
}
