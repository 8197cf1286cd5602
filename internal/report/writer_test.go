package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/nao1215/passaudit/internal/model"
)

// createTestReport creates an analysis report with sample findings for testing.
func createTestReport() *model.AnalysisReport {
	report := model.NewAnalysisReport("Hunter2Secret!")
	report.Fingerprint = "a1b2c3d4e5f6"
	report.ShannonBits = 58.3
	report.GuessBits = 22.5
	report.CrackTimeSeconds = 618970.0
	report.CrackTimeDisplay = "7 days"
	report.Estimator = model.EstimatorZxcvbn
	report.SetScore(1)

	// Add some findings
	report.Warning = "This is similar to a commonly used password."
	report.UserInputHit = true
	report.AddMatch("dictionary", "hunter2", "passwords", 6.5)
	report.AddSuggestion("Add another word or two. Uncommon words are better.")

	return report
}

// createCleanReport creates a strong report with no findings.
func createCleanReport() *model.AnalysisReport {
	report := model.NewAnalysisReport("kV9#mQ2$xL8@wN4z")
	report.Fingerprint = "0f1e2d3c4b5a"
	report.ShannonBits = 95.2
	report.GuessBits = 66.0
	report.CrackTimeSeconds = 3.2e15
	report.CrackTimeDisplay = "centuries"
	report.Estimator = model.EstimatorZxcvbn
	report.SetScore(4)

	return report
}

// createTestBatchReport creates a batch report spanning all strength levels.
func createTestBatchReport() *model.BatchReport {
	batch := model.NewBatchReport("passwords.txt")
	for score := 0; score <= 4; score++ {
		report := model.NewAnalysisReport(fmt.Sprintf("sample-%d", score))
		report.Fingerprint = fmt.Sprintf("aaaa0000000%d", score)
		report.CrackTimeDisplay = "1 hour"
		report.Estimator = model.EstimatorZxcvbn
		report.SetScore(score)
		batch.Add(report)
	}
	return batch
}

// TestSimpleWriter tests the human-readable report writer.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes report header", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "PASSWORD AUDIT REPORT") {
			t.Error("expected output to contain header")
		}
		if !strings.Contains(output, "a1b2c3d4e5f6") {
			t.Error("expected output to contain fingerprint")
		}
	})

	t.Run("writes strength metrics", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "STRENGTH") {
			t.Error("expected output to contain strength section")
		}
		if !strings.Contains(output, "Score:        1 / 4") {
			t.Error("expected output to contain score")
		}
		if !strings.Contains(output, "[!!] WEAK") {
			t.Error("expected output to contain level indicator")
		}
		if !strings.Contains(output, "Crack time:   7 days") {
			t.Error("expected output to contain crack time")
		}
	})

	t.Run("writes findings", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "FINDINGS") {
			t.Error("expected output to contain findings section")
		}
		if !strings.Contains(output, "This is similar to a commonly used password.") {
			t.Error("expected output to contain warning")
		}
		if !strings.Contains(output, "The password contains a supplied personal keyword.") {
			t.Error("expected output to mention personal keyword hit")
		}
		if !strings.Contains(output, "Add another word or two.") {
			t.Error("expected output to contain suggestion")
		}
	})

	t.Run("verbose mode includes matched patterns", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithVerbose(true))
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "Matched patterns:") {
			t.Error("expected verbose output to contain matched patterns")
		}
		if !strings.Contains(output, "dictionary (passwords) 6.5 bits") {
			t.Error("expected verbose output to contain match detail")
		}
	})

	t.Run("default mode hides matched patterns", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if strings.Contains(buf.String(), "Matched patterns:") {
			t.Error("should not show matched patterns without verbose")
		}
	})

	t.Run("never prints password or matched tokens", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithVerbose(true))
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if strings.Contains(output, "Hunter2Secret!") {
			t.Error("output must not contain the password")
		}
		if strings.Contains(output, "hunter2") {
			t.Error("output must not contain matched tokens")
		}
	})

	t.Run("shows degraded estimator", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)
		report := createTestReport()
		report.Estimator = model.EstimatorHeuristic
		report.Degraded = true

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "heuristic (degraded fallback)") {
			t.Error("expected output to flag degraded estimator")
		}
	})
}

// TestSimpleWriterNoFindings tests reports without weaknesses.
func TestSimpleWriterNoFindings(t *testing.T) {
	t.Parallel()

	t.Run("shows empty findings with showEmpty", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithShowEmpty(true))
		report := createCleanReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "No weaknesses detected") {
			t.Error("expected 'No weaknesses detected' message")
		}
	})

	t.Run("hides findings section without showEmpty", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)
		report := createCleanReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if strings.Contains(output, "FINDINGS") {
			t.Error("should not show findings section without showEmpty")
		}
	})
}

// TestSimpleWriterLevelIndicators tests level indicators for all scores.
func TestSimpleWriterLevelIndicators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score     int
		indicator string
	}{
		{0, "[!!!] VERY WEAK"},
		{1, "[!!] WEAK"},
		{2, "[!] FAIR"},
		{3, "[+] STRONG"},
		{4, "[++] VERY STRONG"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("score %d", tt.score), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			w := NewSimpleWriter(&buf)
			report := createCleanReport()
			report.SetScore(tt.score)

			_, err := w.Write(report)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !strings.Contains(buf.String(), tt.indicator) {
				t.Errorf("expected indicator %q in output", tt.indicator)
			}
		})
	}
}

// TestSimpleWriterWriteBatch tests the batch output format.
func TestSimpleWriterWriteBatch(t *testing.T) {
	t.Parallel()

	t.Run("writes batch header", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)
		batch := createTestBatchReport()

		_, err := w.WriteBatch(batch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "PASSWORD AUDIT BATCH REPORT") {
			t.Error("expected output to contain batch header")
		}
		if !strings.Contains(output, "passwords.txt") {
			t.Error("expected output to contain source")
		}
		if !strings.Contains(output, "Passwords:      5") {
			t.Error("expected output to contain password count")
		}
	})

	t.Run("writes score distribution", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)
		batch := createTestBatchReport()

		_, err := w.WriteBatch(batch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "SCORE DISTRIBUTION") {
			t.Error("expected output to contain distribution section")
		}
		if !strings.Contains(output, "VERY WEAK:   1") {
			t.Error("expected output to contain very weak count")
		}
		if !strings.Contains(output, "WEAK OR WORSE: 2 of 5") {
			t.Error("expected output to contain weak total")
		}
	})

	t.Run("writes weakest passwords", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)
		batch := createTestBatchReport()

		_, err := w.WriteBatch(batch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "WEAKEST PASSWORDS") {
			t.Error("expected output to contain weakest section")
		}
		if !strings.Contains(output, "[!!!] aaaa00000000  score 0/4  1 hour") {
			t.Error("expected output to contain weakest entry")
		}
	})

	t.Run("limits weakest entries", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithWeakestLimit(1))
		batch := createTestBatchReport()

		_, err := w.WriteBatch(batch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "aaaa00000000") {
			t.Error("expected weakest entry in output")
		}
		if strings.Contains(output, "aaaa00000001") {
			t.Error("expected second entry to be cut by the limit")
		}
	})

	t.Run("handles empty batch", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)
		batch := model.NewBatchReport("empty.txt")

		_, err := w.WriteBatch(batch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "No entries") {
			t.Error("expected 'No entries' message")
		}
		if !strings.Contains(output, "WEAK OR WORSE: 0 of 0") {
			t.Error("expected zero weak total")
		}
	})
}

// TestJSONWriter tests the JSON report writer.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("outputs valid JSON", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Verify it's valid JSON
		var parsed model.AnalysisReport
		if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}

		if parsed.Fingerprint != "a1b2c3d4e5f6" {
			t.Errorf("expected fingerprint %q, got %q",
				"a1b2c3d4e5f6", parsed.Fingerprint)
		}
		if parsed.Score != 1 {
			t.Errorf("expected score 1, got %d", parsed.Score)
		}
	})

	t.Run("compact output by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		// Compact JSON should be on fewer lines
		lines := strings.Split(strings.TrimSpace(output), "\n")
		if len(lines) > 1 {
			t.Errorf("expected compact output (1 line), got %d lines", len(lines))
		}
	})

	t.Run("pretty print with indent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, WithPrettyPrint())
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		// Pretty printed JSON should have multiple lines
		lines := strings.Split(strings.TrimSpace(output), "\n")
		if len(lines) < 5 {
			t.Errorf("expected multi-line output, got %d lines", len(lines))
		}
	})

	t.Run("never serializes password or matched tokens", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if strings.Contains(output, "Hunter2Secret!") {
			t.Error("JSON must not contain the password")
		}
		if strings.Contains(output, "hunter2") {
			t.Error("JSON must not contain matched tokens")
		}
	})

	t.Run("WriteBatch outputs batch JSON", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)
		batch := createTestBatchReport()

		_, err := w.WriteBatch(batch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var parsed model.BatchReport
		if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}

		if parsed.Source != "passwords.txt" {
			t.Errorf("expected source %q, got %q", "passwords.txt", parsed.Source)
		}
		if parsed.Total != 5 {
			t.Errorf("expected total 5, got %d", parsed.Total)
		}
	})
}

// TestWithIndent tests the WithIndent JSON option.
func TestWithIndent(t *testing.T) {
	t.Parallel()

	t.Run("uses custom prefix and indent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, WithIndent(">>", "\t"))
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		// Should have multiple lines with custom formatting
		lines := strings.Split(strings.TrimSpace(output), "\n")
		if len(lines) < 5 {
			t.Errorf("expected multi-line output, got %d lines", len(lines))
		}
		// Check that prefix is used
		if !strings.Contains(output, ">>") {
			t.Error("expected custom prefix '>>' in output")
		}
		// Check that tab indent is used
		if !strings.Contains(output, "\t") {
			t.Error("expected tab indentation in output")
		}
	})
}

// TestFullJSONWriter tests the full JSON writer with metadata.
func TestFullJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("includes version in output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewFullJSONWriter(&buf, "1.0.0", WithPrettyPrint())
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var parsed JSONReport
		if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}

		if parsed.Version != "1.0.0" {
			t.Errorf("expected version %q, got %q", "1.0.0", parsed.Version)
		}
		if parsed.Report == nil {
			t.Fatal("expected wrapped report")
		}
		if parsed.Report.Fingerprint != "a1b2c3d4e5f6" {
			t.Errorf("expected fingerprint %q, got %q",
				"a1b2c3d4e5f6", parsed.Report.Fingerprint)
		}
	})

	t.Run("wraps batch reports", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewFullJSONWriter(&buf, "1.0.0")
		batch := createTestBatchReport()

		_, err := w.WriteBatch(batch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var parsed JSONReport
		if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}

		if parsed.Batch == nil {
			t.Fatal("expected wrapped batch report")
		}
		if parsed.Batch.Source != "passwords.txt" {
			t.Errorf("expected source %q, got %q",
				"passwords.txt", parsed.Batch.Source)
		}
	})
}

// TestMultiWriter tests writing to multiple outputs.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes to all writers", func(t *testing.T) {
		t.Parallel()

		var buf1, buf2 bytes.Buffer
		w1 := NewSimpleWriter(&buf1)
		w2 := NewJSONWriter(&buf2)

		multi := NewMultiWriter(w1, w2)
		report := createTestReport()

		_, err := multi.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Check both buffers have content
		if buf1.Len() == 0 {
			t.Error("expected buf1 to have content")
		}
		if buf2.Len() == 0 {
			t.Error("expected buf2 to have content")
		}

		// Verify formats are different
		if strings.Contains(buf1.String(), "{") {
			t.Error("expected buf1 (simple) to not be JSON")
		}
		if !strings.Contains(buf2.String(), "{") {
			t.Error("expected buf2 (JSON) to contain JSON")
		}
	})

	t.Run("writes batch to all writers", func(t *testing.T) {
		t.Parallel()

		var buf1, buf2 bytes.Buffer
		w1 := NewSimpleWriter(&buf1)
		w2 := NewJSONWriter(&buf2)

		multi := NewMultiWriter(w1, w2)
		batch := createTestBatchReport()

		n, err := multi.WriteBatch(batch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n == 0 {
			t.Error("expected non-zero bytes written")
		}

		if !strings.Contains(buf1.String(), "passwords.txt") {
			t.Error("expected source in simple output")
		}
		if !strings.Contains(buf2.String(), "passwords.txt") {
			t.Error("expected source in JSON output")
		}
	})

	t.Run("handles empty writers list", func(t *testing.T) {
		t.Parallel()

		multi := NewMultiWriter()
		report := createTestReport()

		n, err := multi.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 0 {
			t.Errorf("expected 0 bytes written for empty writers, got %d", n)
		}
	})
}

// TestMarkdownWriter tests the Markdown report writer.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes report header", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "# Password Audit Report") {
			t.Error("expected output to contain H1 header")
		}
		if !strings.Contains(output, "a1b2c3d4e5f6") {
			t.Error("expected output to contain fingerprint")
		}
	})

	t.Run("writes strength table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "## Strength") {
			t.Error("expected output to contain strength header")
		}
		if !strings.Contains(output, "🟠 WEAK") {
			t.Error("expected output to contain level emoji")
		}
		if !strings.Contains(output, "Guess entropy") {
			t.Error("expected output to contain guess entropy row")
		}
	})

	t.Run("includes GitHub alert for weak password", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "[!WARNING]") {
			t.Error("expected WARNING alert for weak password")
		}
	})

	t.Run("includes caution alert for very weak password", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		report := createTestReport()
		report.SetScore(0)

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "[!CAUTION]") {
			t.Error("expected CAUTION alert for very weak password")
		}
	})

	t.Run("includes tip alert for very strong password", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		report := createCleanReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "[!TIP]") {
			t.Error("expected TIP alert for very strong password")
		}
	})

	t.Run("writes findings", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "## Findings") {
			t.Error("expected output to contain findings header")
		}
		if !strings.Contains(output, "This is similar to a commonly used password.") {
			t.Error("expected output to contain warning")
		}
		if !strings.Contains(output, "passwords") {
			t.Error("expected output to contain dictionary name")
		}
		if !strings.Contains(output, "Add another word or two.") {
			t.Error("expected output to contain suggestion")
		}
	})

	t.Run("never renders password or matched tokens", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if strings.Contains(output, "Hunter2Secret!") {
			t.Error("output must not contain the password")
		}
		if strings.Contains(output, "hunter2") {
			t.Error("output must not contain matched tokens")
		}
	})

	t.Run("handles report with no findings", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		report := createCleanReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "No weaknesses detected") {
			t.Error("expected message about no findings")
		}
	})

	t.Run("writes footer with link", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "https://github.com/nao1215/passaudit") {
			t.Error("expected footer with repository link")
		}
	})
}

// TestMarkdownWriterWriteBatch tests the Markdown batch output.
func TestMarkdownWriterWriteBatch(t *testing.T) {
	t.Parallel()

	t.Run("writes batch header", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		batch := createTestBatchReport()

		_, err := w.WriteBatch(batch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "# Password Audit Batch Report") {
			t.Error("expected output to contain H1 header")
		}
		if !strings.Contains(output, "passwords.txt") {
			t.Error("expected output to contain source")
		}
	})

	t.Run("writes distribution table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		batch := createTestBatchReport()

		_, err := w.WriteBatch(batch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "## Score Distribution") {
			t.Error("expected output to contain distribution header")
		}
		if !strings.Contains(output, "🔴 Very Weak") {
			t.Error("expected output to contain very weak row")
		}
	})

	t.Run("includes pie chart", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		batch := createTestBatchReport()

		_, err := w.WriteBatch(batch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "```mermaid") {
			t.Error("expected output to contain mermaid code block")
		}
		if !strings.Contains(output, "pie") {
			t.Error("expected output to contain pie chart")
		}
	})

	t.Run("includes caution alert when very weak present", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		batch := createTestBatchReport()

		_, err := w.WriteBatch(batch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "[!CAUTION]") {
			t.Error("expected CAUTION alert when very weak passwords present")
		}
	})

	t.Run("includes tip alert when all strong", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		batch := model.NewBatchReport("strong.txt")
		batch.Add(createCleanReport())

		_, err := w.WriteBatch(batch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "[!TIP]") {
			t.Error("expected TIP alert when all passwords are strong")
		}
	})

	t.Run("writes weakest table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		batch := createTestBatchReport()

		_, err := w.WriteBatch(batch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "## Weakest Passwords") {
			t.Error("expected output to contain weakest header")
		}
		if !strings.Contains(output, "aaaa00000000") {
			t.Error("expected output to contain weakest fingerprint")
		}
	})

	t.Run("handles empty batch", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		batch := model.NewBatchReport("empty.txt")

		_, err := w.WriteBatch(batch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "No entries.") {
			t.Error("expected 'No entries.' message")
		}
		if strings.Contains(output, "```mermaid") {
			t.Error("should not include pie chart for empty batch")
		}
		if !strings.Contains(output, "[!NOTE]") {
			t.Error("expected NOTE alert for empty batch")
		}
	})
}

// TestTruncateString tests the string truncation helper.
func TestTruncateString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is a longer string", 10, "this is..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"ab", 5, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			result := truncateString(tt.input, tt.maxLen)
			if result != tt.expected {
				t.Errorf("truncateString(%q, %d) = %q, want %q",
					tt.input, tt.maxLen, result, tt.expected)
			}
		})
	}
}
