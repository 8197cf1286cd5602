package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Menu actions.
const (
	actionAnalyze  = "analyze"
	actionWordlist = "wordlist"
	actionQuit     = "quit"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
)

type menuItem struct {
	title       string
	description string
	action      string
}

func (i menuItem) FilterValue() string { return i.title }

type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(menuItem)
	if !ok {
		return
	}

	str := fmt.Sprintf("%d. %s", index+1, i.title)

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + s[0])
		}
	}

	_, _ = fmt.Fprint(w, fn(str))
}

// menuModel is the main menu view.
type menuModel struct {
	list list.Model
}

func newMenuModel() menuModel {
	items := []list.Item{
		menuItem{
			title:       "Analyze Password",
			description: "Score a password and estimate crack time",
			action:      actionAnalyze,
		},
		menuItem{
			title:       "Generate Wordlist",
			description: "Expand personal keywords into candidates",
			action:      actionWordlist,
		},
		menuItem{
			title:       "Quit",
			description: "Exit passaudit",
			action:      actionQuit,
		},
	}

	const defaultWidth = 40

	l := list.New(items, itemDelegate{}, defaultWidth, 10)
	l.Title = "passaudit - Password Audit Toolkit"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	return menuModel{list: l}
}

// selectedAction returns the action of the highlighted entry.
func (m menuModel) selectedAction() string {
	item, ok := m.list.SelectedItem().(menuItem)
	if !ok {
		return actionQuit
	}

	return item.action
}

func (m *menuModel) setWidth(width int) {
	m.list.SetWidth(width)
}

func (m menuModel) update(msg tea.Msg) (menuModel, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m menuModel) view() string {
	return "\n" + m.list.View()
}
