package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nao1215/passaudit/internal/wordlist"
)

// Wordlist form fields. The leet toggle and submit button sit after the
// text inputs in the focus order.
const (
	wordlistFieldKeywords = iota
	wordlistFieldYears
	wordlistFieldSeparators
	wordlistFieldOutput
	wordlistFieldCount
)

const defaultWordlistOutput = "wordlist.txt"

// errNoKeywords reports an empty keywords field on submit.
var errNoKeywords = errors.New("enter at least one keyword")

// wordlistDoneMsg carries a finished generation back into the event loop.
type wordlistDoneMsg struct {
	candidates int
	truncated  bool
	outputPath string
	checksum   string
	err        error
}

// wordlistModel is the wordlist generation form with inline results.
type wordlistModel struct {
	focusIndex int
	inputs     []textinput.Model
	leet       bool
	done       bool
	result     wordlistDoneMsg
}

func newWordlistModel() wordlistModel {
	m := wordlistModel{
		inputs: make([]textinput.Model, wordlistFieldCount),
		leet:   true,
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = cursorStyle
		t.CharLimit = 256

		switch i {
		case wordlistFieldKeywords:
			t.Placeholder = "rex, sparky, acme"
			t.Focus()
			t.PromptStyle = focusedStyle
			t.TextStyle = focusedStyle
		case wordlistFieldYears:
			t.Placeholder = "1990-1992,2024 (empty = recent years)"
		case wordlistFieldSeparators:
			t.Placeholder = ",_,-,. (empty first = plain join)"
		case wordlistFieldOutput:
			t.Placeholder = defaultWordlistOutput
		}

		m.inputs[i] = t
	}

	return m
}

// toggleIndex is the focus position of the leet toggle.
func (m wordlistModel) toggleIndex() int {
	return len(m.inputs)
}

// submitIndex is the focus position of the submit button.
func (m wordlistModel) submitIndex() int {
	return len(m.inputs) + 1
}

func (m wordlistModel) update(msg tea.Msg) (wordlistModel, tea.Cmd) {
	switch msg := msg.(type) {
	case wordlistDoneMsg:
		m.done = true
		m.result = msg

		return m, nil

	case tea.KeyMsg:
		// Results are read-only; esc back to the menu is handled above.
		if m.done {
			return m, nil
		}

		switch msg.String() {
		case " ":
			if m.focusIndex == m.toggleIndex() {
				m.leet = !m.leet

				return m, nil
			}

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			// Enter flips the toggle instead of advancing
			if s == "enter" && m.focusIndex == m.toggleIndex() {
				m.leet = !m.leet

				return m, nil
			}

			// Submit on enter when on the submit button
			if s == "enter" && m.focusIndex == m.submitIndex() {
				return m, m.runGeneration
			}

			// Cycle indexes
			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}

			if m.focusIndex > m.submitIndex() {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = m.submitIndex()
			}

			return m, m.applyFocus()
		}
	}

	return m, m.updateInputs(msg)
}

// applyFocus focuses the input under the cursor and blurs the rest.
func (m *wordlistModel) applyFocus() tea.Cmd {
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

func (m *wordlistModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))

	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	return tea.Batch(cmds...)
}

// runGeneration expands the entered keywords and writes the list to disk.
func (m wordlistModel) runGeneration() tea.Msg {
	keywords := splitKeywords(m.inputs[wordlistFieldKeywords].Value())
	if len(keywords) == 0 {
		return wordlistDoneMsg{err: errNoKeywords}
	}

	opts := []wordlist.Option{
		wordlist.WithYears(wordlist.ParseYears(m.inputs[wordlistFieldYears].Value())),
		wordlist.WithLeet(m.leet),
	}
	if separators := splitSeparators(m.inputs[wordlistFieldSeparators].Value()); separators != nil {
		opts = append(opts, wordlist.WithSeparators(separators))
	}

	generator := wordlist.NewGenerator(opts...)
	result, err := generator.Generate(context.Background(), keywords)
	if err != nil {
		return wordlistDoneMsg{err: err}
	}

	outputPath := strings.TrimSpace(m.inputs[wordlistFieldOutput].Value())
	if outputPath == "" {
		outputPath = defaultWordlistOutput
	}

	checksum, err := wordlist.WriteFile(outputPath, result.Candidates)
	if err != nil {
		return wordlistDoneMsg{err: err}
	}

	return wordlistDoneMsg{
		candidates: len(result.Candidates),
		truncated:  result.Truncated,
		outputPath: outputPath,
		checksum:   checksum,
	}
}

func (m wordlistModel) view() string {
	if m.done {
		return m.resultView()
	}

	s := headerStyle.Render("Generate Wordlist") + "\n"
	s += blurredStyle.Render("Expand personal keywords into password candidates") + "\n\n"
	s += fmt.Sprintf(fieldFmt, blurredStyle.Render("Keywords:"), m.inputs[wordlistFieldKeywords].View())
	s += fmt.Sprintf(fieldFmt, blurredStyle.Render("Years:"), m.inputs[wordlistFieldYears].View())
	s += fmt.Sprintf(fieldFmt, blurredStyle.Render("Separators:"), m.inputs[wordlistFieldSeparators].View())
	s += fmt.Sprintf(fieldFmt, blurredStyle.Render("Output file:"), m.inputs[wordlistFieldOutput].View())

	s += " " + m.toggleView() + "\n"

	button := &blurredButton
	if m.focusIndex == m.submitIndex() {
		button = &focusedButton
	}

	s += fmt.Sprintf("\n %s\n\n", *button)
	s += blurredStyle.Render(" tab: navigate • enter: submit • esc: back • ctrl+c: quit")

	return s
}

// toggleView renders the leet toggle with its focus state.
func (m wordlistModel) toggleView() string {
	mark := " "
	if m.leet {
		mark = "x"
	}

	label := fmt.Sprintf("[%s] Leetspeak substitutions", mark)
	if m.focusIndex == m.toggleIndex() {
		return focusedStyle.Render("> " + label)
	}

	return blurredStyle.Render("  " + label)
}

// resultView renders the inline generation summary.
func (m wordlistModel) resultView() string {
	if m.result.err != nil {
		s := errorStyle.Render("Generation failed") + "\n\n"
		s += " " + m.result.err.Error() + "\n\n"
		s += blurredStyle.Render(" esc: back to menu • ctrl+c: quit")

		return s
	}

	var sb strings.Builder
	sb.WriteString(successStyle.Render("Wordlist written") + "\n\n")
	sb.WriteString(fmt.Sprintf(" Candidates:  %d\n", m.result.candidates))
	if m.result.truncated {
		sb.WriteString(" The size cap cut generation short.\n")
	}
	sb.WriteString(fmt.Sprintf(" Output:      %s\n", m.result.outputPath))
	sb.WriteString(fmt.Sprintf(" SHA3-256:    %s\n", m.result.checksum))
	sb.WriteString("\n" + blurredStyle.Render(" esc: back to menu • ctrl+c: quit"))

	return sb.String()
}
