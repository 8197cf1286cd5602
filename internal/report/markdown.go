package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/passaudit/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing audit results.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs one analysis report in Markdown format.
func (w *MarkdownWriter) Write(report *model.AnalysisReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeStrength(md, report)
	w.writeFindings(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with analysis information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H1("Password Audit Report")
	md.PlainText("")

	// Basic info table
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Fingerprint", "`" + report.Fingerprint + "`"},
			{"Analyzed", report.DateAnalyzed.Format("2006-01-02 15:04:05 MST")},
			{"Length", strconv.Itoa(report.Length) + " characters"},
			{"Estimator", w.getEstimatorText(report)},
		},
	})
	md.PlainText("")
}

// getEstimatorText returns the estimator text based on report state.
func (w *MarkdownWriter) getEstimatorText(report *model.AnalysisReport) string {
	if report.Degraded {
		return "⚠️ " + report.Estimator + " (degraded fallback)"
	}
	return report.Estimator
}

// writeStrength writes the strength metrics section with an alert.
func (w *MarkdownWriter) writeStrength(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H2("Strength")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Score", strconv.Itoa(report.Score) + " / " + strconv.Itoa(model.MaxScore)},
			{"Level", w.getLevelEmoji(report.Level) + " " + report.LevelText},
			{"Guess entropy", strconv.FormatFloat(report.GuessBits, 'f', 1, 64) + " bits"},
			{"Shannon entropy", strconv.FormatFloat(report.ShannonBits, 'f', 1, 64) + " bits"},
			{"Crack time", report.CrackTimeDisplay},
		},
	})
	md.PlainText("")

	w.writeLevelAlert(md, report)
}

// writeLevelAlert writes an appropriate alert based on the strength level.
func (w *MarkdownWriter) writeLevelAlert(md *markdown.Markdown, report *model.AnalysisReport) {
	switch report.Level {
	case model.LevelVeryWeak:
		md.Cautionf(
			"This password is very weak. An offline attacker cracks it in %s.",
			report.CrackTimeDisplay,
		)
	case model.LevelWeak:
		md.Warningf(
			"This password is weak. Estimated offline crack time: %s.",
			report.CrackTimeDisplay,
		)
	case model.LevelFair:
		md.Important(
			"This password is fair. It resists online guessing but not dedicated offline cracking.",
		)
	case model.LevelStrong:
		md.Note("This password is strong against most offline attacks.")
	default:
		md.Tip("This password is beyond realistic cracking effort.")
	}
	md.PlainText("")
}

// writeFindings writes the warning, matched patterns, and suggestions.
func (w *MarkdownWriter) writeFindings(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H2("Findings")
	md.PlainText("")

	hasFindings := report.Warning != "" || report.UserInputHit ||
		len(report.Suggestions) > 0 || len(report.Matches) > 0
	if !hasFindings {
		md.PlainText("No weaknesses detected.")
		md.PlainText("")
		return
	}

	if report.Warning != "" {
		md.PlainText("**Warning:** " + report.Warning)
		md.PlainText("")
	}
	if report.UserInputHit {
		md.PlainText("The password contains a supplied personal keyword.")
		md.PlainText("")
	}

	// Matched tokens are password material and never rendered.
	if len(report.Matches) > 0 {
		rows := make([][]string, len(report.Matches))
		for i, match := range report.Matches {
			dictionary := match.Dictionary
			if dictionary == "" {
				dictionary = "-"
			}
			rows[i] = []string{
				match.Kind,
				dictionary,
				strconv.FormatFloat(match.GuessBits, 'f', 1, 64),
			}
		}

		md.Table(markdown.TableSet{
			Header: []string{"Pattern", "Dictionary", "Guess Bits"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	if len(report.Suggestions) > 0 {
		md.PlainText("**Suggestions:**")
		md.PlainText("")
		md.BulletList(report.Suggestions...)
		md.PlainText("")
	}
}

// WriteBatch outputs the batch report in Markdown format.
func (w *MarkdownWriter) WriteBatch(report *model.BatchReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Password Audit Batch Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", "`" + report.Source + "`"},
			{"Analyzed", report.DateAnalyzed.Format("2006-01-02 15:04:05 MST")},
			{"Passwords", strconv.Itoa(report.Total)},
		},
	})
	md.PlainText("")

	w.writeDistribution(md, report)
	w.writeWeakest(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeDistribution writes the score distribution section.
func (w *MarkdownWriter) writeDistribution(md *markdown.Markdown, report *model.BatchReport) {
	md.H2("Score Distribution")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Level", "Count"},
		Rows: [][]string{
			{"🔴 Very Weak", strconv.Itoa(report.VeryWeakCount)},
			{"🟠 Weak", strconv.Itoa(report.WeakCount)},
			{"🟡 Fair", strconv.Itoa(report.FairCount)},
			{"🟢 Strong", strconv.Itoa(report.StrongCount)},
			{"🔵 Very Strong", strconv.Itoa(report.VeryStrongCount)},
			{"**Total**", "**" + strconv.Itoa(report.Total) + "**"},
		},
	})
	md.PlainText("")

	// Add pie chart if anything was analyzed
	if report.Total > 0 {
		w.writePieChart(md, report)
	}

	// Add alert based on the weak share
	w.writeBatchAlert(md, report)
}

// writePieChart writes a mermaid pie chart for the score distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.BatchReport) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Password Score Distribution"),
		piechart.WithShowData(true),
	)

	if report.VeryWeakCount > 0 {
		chart.LabelAndIntValue("Very Weak", uint64(report.VeryWeakCount))
	}
	if report.WeakCount > 0 {
		chart.LabelAndIntValue("Weak", uint64(report.WeakCount))
	}
	if report.FairCount > 0 {
		chart.LabelAndIntValue("Fair", uint64(report.FairCount))
	}
	if report.StrongCount > 0 {
		chart.LabelAndIntValue("Strong", uint64(report.StrongCount))
	}
	if report.VeryStrongCount > 0 {
		chart.LabelAndIntValue("Very Strong", uint64(report.VeryStrongCount))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeBatchAlert writes an appropriate alert based on the distribution.
func (w *MarkdownWriter) writeBatchAlert(md *markdown.Markdown, report *model.BatchReport) {
	switch {
	case report.VeryWeakCount > 0:
		md.Cautionf(
			"%d password(s) are very weak and crackable in moments. Rotate them immediately.",
			report.VeryWeakCount,
		)
	case report.WeakCount > 0:
		md.Warningf(
			"%d password(s) are weak and should be rotated.",
			report.WeakCount,
		)
	case report.FairCount > 0:
		md.Importantf(
			"%d password(s) are only fair. Consider longer passphrases.",
			report.FairCount,
		)
	case report.Total > 0:
		md.Tip("All analyzed passwords are strong.")
	default:
		md.Note("No passwords were analyzed.")
	}
	md.PlainText("")
}

// writeWeakest writes the weakest entries section.
func (w *MarkdownWriter) writeWeakest(md *markdown.Markdown, report *model.BatchReport) {
	md.H2("Weakest Passwords")
	md.PlainText("")

	weakest := report.Weakest(defaultWeakestLimit)
	if len(weakest) == 0 {
		md.PlainText("No entries.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(weakest))
	for i, entry := range weakest {
		warning := entry.Warning
		if warning == "" {
			warning = "-"
		}
		rows[i] = []string{
			"`" + entry.Fingerprint + "`",
			strconv.Itoa(entry.Score) + " / " + strconv.Itoa(model.MaxScore),
			w.getLevelEmoji(entry.Level) + " " + entry.LevelText,
			entry.CrackTimeDisplay,
			truncateString(warning, 60),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Fingerprint", "Score", "Level", "Crack Time", "Warning"},
		Rows:   rows,
	})
	md.PlainText("")
}

// getLevelEmoji returns a colored indicator for the strength level.
func (w *MarkdownWriter) getLevelEmoji(level model.StrengthLevel) string {
	switch level {
	case model.LevelVeryWeak:
		return "🔴"
	case model.LevelWeak:
		return "🟠"
	case model.LevelFair:
		return "🟡"
	case model.LevelStrong:
		return "🟢"
	case model.LevelVeryStrong:
		return "🔵"
	default:
		return "⚪"
	}
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [passaudit](https://github.com/nao1215/passaudit)*")
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
