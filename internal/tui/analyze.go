package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nao1215/passaudit/internal/analyzer"
	"github.com/nao1215/passaudit/internal/model"
)

// Analyze form fields.
const (
	analyzeFieldPassword = iota
	analyzeFieldKeywords
	analyzeFieldCount
)

// analyzeDoneMsg carries a finished analysis back into the event loop.
type analyzeDoneMsg struct {
	report *model.AnalysisReport
	err    error
}

// analyzeModel is the masked password analysis form with inline results.
type analyzeModel struct {
	focusIndex int
	inputs     []textinput.Model
	analyzer   *analyzer.Analyzer
	report     *model.AnalysisReport
	err        error
}

func newAnalyzeModel(a *analyzer.Analyzer) analyzeModel {
	m := analyzeModel{
		inputs:   make([]textinput.Model, analyzeFieldCount),
		analyzer: a,
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = cursorStyle
		t.CharLimit = 256

		switch i {
		case analyzeFieldPassword:
			t.Placeholder = "password to analyze"
			t.EchoMode = textinput.EchoPassword
			t.EchoCharacter = '•'
			t.Focus()
			t.PromptStyle = focusedStyle
			t.TextStyle = focusedStyle
		case analyzeFieldKeywords:
			t.Placeholder = "name, pet, 1990 (optional)"
		}

		m.inputs[i] = t
	}

	return m
}

func (m analyzeModel) update(msg tea.Msg) (analyzeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case analyzeDoneMsg:
		m.report = msg.report
		m.err = msg.err

		return m, nil

	case tea.KeyMsg:
		// Results are read-only; esc back to the menu is handled above.
		if m.report != nil || m.err != nil {
			return m, nil
		}

		switch msg.String() {
		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			// Submit on enter when on the submit button
			if s == "enter" && m.focusIndex == len(m.inputs) {
				return m, m.runAnalysis
			}

			// Cycle indexes
			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}

			if m.focusIndex > len(m.inputs) {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = len(m.inputs)
			}

			return m, m.applyFocus()
		}
	}

	return m, m.updateInputs(msg)
}

// applyFocus focuses the input under the cursor and blurs the rest.
func (m *analyzeModel) applyFocus() tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := 0; i <= len(m.inputs)-1; i++ {
		if i == m.focusIndex {
			cmds[i] = m.inputs[i].Focus()
			m.inputs[i].PromptStyle = focusedStyle
			m.inputs[i].TextStyle = focusedStyle

			continue
		}
		m.inputs[i].Blur()
		m.inputs[i].PromptStyle = noStyle
		m.inputs[i].TextStyle = noStyle
	}

	return tea.Batch(cmds...)
}

func (m *analyzeModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))

	// Only text inputs with Focus() set will respond, so it's safe to simply
	// update all of them here without any further logic.
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	return tea.Batch(cmds...)
}

// runAnalysis scores the entered password. The password stays inside the
// message and is never logged or persisted.
func (m analyzeModel) runAnalysis() tea.Msg {
	password := m.inputs[analyzeFieldPassword].Value()
	keywords := splitKeywords(m.inputs[analyzeFieldKeywords].Value())

	report, err := m.analyzer.Analyze(context.Background(), password, keywords)
	if err != nil {
		return analyzeDoneMsg{err: err}
	}

	return analyzeDoneMsg{report: report}
}

func (m analyzeModel) view() string {
	if m.err != nil {
		s := errorStyle.Render("Analysis failed") + "\n\n"
		s += " " + m.err.Error() + "\n\n"
		s += blurredStyle.Render(" esc: back to menu • ctrl+c: quit")

		return s
	}

	if m.report != nil {
		return m.resultView()
	}

	s := headerStyle.Render("Analyze Password") + "\n"
	s += blurredStyle.Render("The password is never echoed, logged, or stored") + "\n\n"
	s += fmt.Sprintf(fieldFmt, blurredStyle.Render("Password:"), m.inputs[analyzeFieldPassword].View())
	s += fmt.Sprintf(fieldFmt, blurredStyle.Render("Personal keywords:"), m.inputs[analyzeFieldKeywords].View())

	button := &blurredButton
	if m.focusIndex == len(m.inputs) {
		button = &focusedButton
	}

	s += fmt.Sprintf("\n %s\n\n", *button)
	s += blurredStyle.Render(" tab: navigate • enter: submit • esc: back • ctrl+c: quit")

	return s
}

// resultView renders the inline analysis summary.
func (m analyzeModel) resultView() string {
	report := m.report

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("Analysis Result") + "\n\n")
	sb.WriteString(fmt.Sprintf(" Fingerprint:  %s\n", report.Fingerprint))
	sb.WriteString(fmt.Sprintf(" Score:        %d / %d\n", report.Score, model.MaxScore))
	sb.WriteString(fmt.Sprintf(" Level:        %s\n", levelStyle(report.Level).Render(report.LevelText)))
	sb.WriteString(fmt.Sprintf(" Guess bits:   %.1f\n", report.GuessBits))
	sb.WriteString(fmt.Sprintf(" Crack time:   %s\n", report.CrackTimeDisplay))

	if report.Degraded {
		sb.WriteString(fmt.Sprintf(" Estimator:    %s (degraded fallback)\n", report.Estimator))
	}

	if report.Warning != "" {
		sb.WriteString("\n " + errorStyle.Render("Warning: ") + report.Warning + "\n")
	}
	if report.UserInputHit {
		sb.WriteString("\n The password contains a supplied personal keyword.\n")
	}

	if len(report.Suggestions) > 0 {
		sb.WriteString("\n Suggestions:\n")
		for _, suggestion := range report.Suggestions {
			sb.WriteString("  * " + suggestion + "\n")
		}
	}

	sb.WriteString("\n" + blurredStyle.Render(" esc: back to menu • ctrl+c: quit"))

	return sb.String()
}

// levelStyle returns a color style matching the strength level.
func levelStyle(level model.StrengthLevel) lipgloss.Style {
	switch level {
	case model.LevelVeryWeak:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	case model.LevelWeak:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	case model.LevelFair:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226"))
	case model.LevelStrong:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	default:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	}
}
