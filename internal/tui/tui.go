package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nao1215/passaudit/internal/analyzer"
)

const fieldFmt = " %s\n %s\n\n"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle  = focusedStyle
	noStyle      = lipgloss.NewStyle()

	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	focusedButton = focusedStyle.Render("[ Submit ]")
	blurredButton = "[ " + blurredStyle.Render("Submit") + " ]"
)

// sessionState identifies the active view.
type sessionState int

const (
	stateMenu sessionState = iota
	stateAnalyze
	stateWordlist
)

// Model is the root program model. It owns the menu and the two forms and
// routes messages to whichever view is active.
type Model struct {
	state    sessionState
	menu     menuModel
	analyze  analyzeModel
	wordlist wordlistModel
	analyzer *analyzer.Analyzer
	quitting bool
}

// New creates the root model showing the main menu.
func New() Model {
	a := analyzer.NewAnalyzer()

	return Model{
		state:    stateMenu,
		menu:     newMenuModel(),
		analyze:  newAnalyzeModel(a),
		wordlist: newWordlistModel(),
		analyzer: a,
	}
}

// Run starts the interactive program and blocks until the user quits.
func Run() error {
	p := tea.NewProgram(New())
	_, err := p.Run()

	return err
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and routes them to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.menu.setWidth(msg.Width)

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true

			return m, tea.Quit

		case "q":
			// Only quits from the menu; forms need the character.
			if m.state == stateMenu {
				m.quitting = true

				return m, tea.Quit
			}

		case "esc":
			if m.state != stateMenu {
				// Rebuild the forms so password material does not
				// linger between visits.
				m.analyze = newAnalyzeModel(m.analyzer)
				m.wordlist = newWordlistModel()
				m.state = stateMenu

				return m, nil
			}

		case "enter":
			if m.state == stateMenu {
				return m.selectMenuItem()
			}
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case stateMenu:
		m.menu, cmd = m.menu.update(msg)
	case stateAnalyze:
		m.analyze, cmd = m.analyze.update(msg)
	case stateWordlist:
		m.wordlist, cmd = m.wordlist.update(msg)
	}

	return m, cmd
}

// selectMenuItem switches to the view the menu selection names.
func (m Model) selectMenuItem() (tea.Model, tea.Cmd) {
	switch m.menu.selectedAction() {
	case actionAnalyze:
		m.state = stateAnalyze

		return m, textinput.Blink

	case actionWordlist:
		m.state = stateWordlist

		return m, textinput.Blink

	default:
		m.quitting = true

		return m, tea.Quit
	}
}

// View renders the active view.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	switch m.state {
	case stateAnalyze:
		return m.analyze.view()
	case stateWordlist:
		return m.wordlist.view()
	default:
		return m.menu.view()
	}
}

// splitKeywords splits a comma-separated field into trimmed keywords,
// dropping empties.
func splitKeywords(raw string) []string {
	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			keywords = append(keywords, part)
		}
	}

	return keywords
}

// splitSeparators splits a comma-separated field into joiner strings,
// keeping empty entries so the plain concatenation joiner can be spelled.
// An all-blank field returns nil, which selects the generator defaults.
func splitSeparators(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	separators := make([]string, 0, len(parts))
	for _, part := range parts {
		separators = append(separators, strings.TrimSpace(part))
	}

	return separators
}
