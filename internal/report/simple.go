package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/passaudit/internal/model"
)

// defaultWeakestLimit is the number of weakest entries listed in batch output.
const defaultWeakestLimit = 5

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with indicator-coded strength
// levels and clear section formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// showEmpty controls whether the findings section is shown when the
	// analysis found nothing to complain about.
	showEmpty bool

	// verbose enables the matched-pattern detail in the output.
	verbose bool

	// weakestLimit is the number of weakest entries listed in batch output.
	weakestLimit int
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowEmpty configures the writer to show the findings section even
// when there are no findings.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEmpty = show
	}
}

// WithVerbose enables verbose output with matched-pattern details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// WithWeakestLimit sets how many weakest entries batch output lists.
func WithWeakestLimit(n int) SimpleWriterOption {
	return func(w *SimpleWriter) {
		if n > 0 {
			w.weakestLimit = n
		}
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter:   newBaseWriter(output),
		showEmpty:    false,
		verbose:      false,
		weakestLimit: defaultWeakestLimit,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs one analysis report in human-readable format.
func (w *SimpleWriter) Write(report *model.AnalysisReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeStrength(&sb, report)
	w.writeFindings(&sb, report)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with analysis information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.AnalysisReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                        PASSWORD AUDIT REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Fingerprint:    %s\n", report.Fingerprint))
	sb.WriteString(fmt.Sprintf("Analyzed:       %s\n", report.DateAnalyzed.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Length:         %d characters\n", report.Length))

	if report.Degraded {
		sb.WriteString(fmt.Sprintf("Estimator:      %s (degraded fallback)\n", report.Estimator))
	} else {
		sb.WriteString(fmt.Sprintf("Estimator:      %s\n", report.Estimator))
	}

	sb.WriteString("\n")
}

// writeStrength writes the strength metrics section.
func (w *SimpleWriter) writeStrength(sb *strings.Builder, report *model.AnalysisReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("STRENGTH\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	indicator := w.getLevelIndicator(report.Level)
	sb.WriteString(fmt.Sprintf("  Score:        %d / %d\n", report.Score, model.MaxScore))
	sb.WriteString(fmt.Sprintf("  Level:        [%s] %s\n", indicator, report.LevelText))
	sb.WriteString(fmt.Sprintf("  Guess bits:   %.1f\n", report.GuessBits))
	sb.WriteString(fmt.Sprintf("  Shannon bits: %.1f\n", report.ShannonBits))
	sb.WriteString(fmt.Sprintf("  Crack time:   %s\n", report.CrackTimeDisplay))
	sb.WriteString("\n")
}

// writeFindings writes the warning, matched patterns, and suggestions.
func (w *SimpleWriter) writeFindings(sb *strings.Builder, report *model.AnalysisReport) {
	hasFindings := report.Warning != "" || report.UserInputHit ||
		len(report.Suggestions) > 0 || len(report.Matches) > 0
	if !hasFindings && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("FINDINGS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if !hasFindings {
		sb.WriteString("  No weaknesses detected\n\n")
		return
	}

	if report.Warning != "" {
		sb.WriteString(fmt.Sprintf("  Warning: %s\n", report.Warning))
	}
	if report.UserInputHit {
		sb.WriteString("  The password contains a supplied personal keyword.\n")
	}
	if report.Warning != "" || report.UserInputHit {
		sb.WriteString("\n")
	}

	// Matched patterns are detail; only shown in verbose mode.
	// Matched tokens are password material and never printed.
	if w.verbose && len(report.Matches) > 0 {
		sb.WriteString("  Matched patterns:\n")
		for _, match := range report.Matches {
			if match.Dictionary != "" {
				sb.WriteString(fmt.Sprintf("  * %s (%s) %.1f bits\n", match.Kind, match.Dictionary, match.GuessBits))
			} else {
				sb.WriteString(fmt.Sprintf("  * %s %.1f bits\n", match.Kind, match.GuessBits))
			}
		}
		sb.WriteString("\n")
	}

	if len(report.Suggestions) > 0 {
		sb.WriteString("  Suggestions:\n")
		for _, suggestion := range report.Suggestions {
			sb.WriteString(fmt.Sprintf("  * %s\n", suggestion))
		}
		sb.WriteString("\n")
	}
}

// WriteBatch outputs the batch report in human-readable format.
func (w *SimpleWriter) WriteBatch(report *model.BatchReport) (int, error) {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                     PASSWORD AUDIT BATCH REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Source:         %s\n", report.Source))
	sb.WriteString(fmt.Sprintf("Analyzed:       %s\n", report.DateAnalyzed.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Passwords:      %d\n", report.Total))
	sb.WriteString("\n")

	w.writeDistribution(&sb, report)
	w.writeWeakest(&sb, report)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeDistribution writes the score distribution section.
func (w *SimpleWriter) writeDistribution(sb *strings.Builder, report *model.BatchReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("SCORE DISTRIBUTION\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  VERY WEAK:   %d\n", report.VeryWeakCount))
	sb.WriteString(fmt.Sprintf("  WEAK:        %d\n", report.WeakCount))
	sb.WriteString(fmt.Sprintf("  FAIR:        %d\n", report.FairCount))
	sb.WriteString(fmt.Sprintf("  STRONG:      %d\n", report.StrongCount))
	sb.WriteString(fmt.Sprintf("  VERY STRONG: %d\n", report.VeryStrongCount))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("  WEAK OR WORSE: %d of %d\n", report.WeakTotal(), report.Total))
	sb.WriteString("\n")
}

// writeWeakest writes the weakest entries section.
func (w *SimpleWriter) writeWeakest(sb *strings.Builder, report *model.BatchReport) {
	weakest := report.Weakest(w.weakestLimit)
	if len(weakest) == 0 && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("WEAKEST PASSWORDS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if len(weakest) == 0 {
		sb.WriteString("  No entries\n\n")
		return
	}

	for _, entry := range weakest {
		indicator := w.getLevelIndicator(entry.Level)
		sb.WriteString(fmt.Sprintf("  [%s] %s  score %d/%d  %s\n",
			indicator, entry.Fingerprint, entry.Score, model.MaxScore, entry.CrackTimeDisplay))
	}
	sb.WriteString("\n")
}

// getLevelIndicator returns a visual indicator for the strength level.
func (w *SimpleWriter) getLevelIndicator(level model.StrengthLevel) string {
	switch level {
	case model.LevelVeryWeak:
		return "!!!"
	case model.LevelWeak:
		return "!!"
	case model.LevelFair:
		return "!"
	case model.LevelStrong:
		return "+"
	case model.LevelVeryStrong:
		return "++"
	default:
		return "?"
	}
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by passaudit\n")
	sb.WriteString("https://github.com/nao1215/passaudit\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
