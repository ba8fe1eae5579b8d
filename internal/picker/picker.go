// Package picker implements the interactive definition chooser shown by
// `precession pick`.
package picker

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type item string

func (i item) FilterValue() string { return string(i) }
func (i item) Title() string       { return string(i) }
func (i item) Description() string { return "" }

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))

// Model is a bubbletea model that picks one definition name from a list.
type Model struct {
	list      list.Model
	choice    string
	cancelled bool
}

// New creates a picker over the given definition names.
func New(names []string) Model {
	items := make([]list.Item, len(names))
	for i, n := range names {
		items[i] = item(n)
	}
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	l := list.New(items, delegate, 40, 14)
	l.Title = "Start a session"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	l.Styles.Title = titleStyle
	return Model{list: l}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		// While the filter input is open the list owns the keyboard.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			if sel := m.list.SelectedItem(); sel != nil {
				m.choice = string(sel.(item))
			}
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	return m.list.View()
}

// Choice returns the selected definition name, or "" when cancelled.
func (m Model) Choice() string {
	if m.cancelled {
		return ""
	}
	return m.choice
}

// Run shows the picker and blocks until a choice is made or the picker is
// cancelled ("" result).
func Run(names []string) (string, error) {
	p := tea.NewProgram(New(names), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	return final.(Model).Choice(), nil
}
