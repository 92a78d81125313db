package prompt

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pomelyu/gitignore-generator/internal/catalog"
	"github.com/pomelyu/gitignore-generator/internal/ui"
)

// pickerItem adapts a catalog full name to the bubbles list item model.
type pickerItem struct {
	fullName string
}

func (i pickerItem) Title() string       { return catalog.DisplayName(i.fullName) }
func (i pickerItem) Description() string { return i.fullName }
func (i pickerItem) FilterValue() string { return i.fullName }

// pickerModel is the full-screen disambiguation picker shown when more
// than one template matches a query on an interactive terminal.
type pickerModel struct {
	list   list.Model
	choice string
	picked bool
}

func newPickerModel(matches []string, query string, styles ui.Styles) pickerModel {
	items := make([]list.Item, 0, len(matches))
	for _, name := range matches {
		items = append(items, pickerItem{fullName: name})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("Templates matching %q", query)
	l.Styles.Title = styles.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return pickerModel{list: l}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		// Ignore keys while the list's own filter input is active.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(pickerItem); ok {
				m.choice = item.fullName
				m.picked = true
			}
			return m, tea.Quit
		case "esc", "q", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	return m.list.View()
}

// pick runs the full-screen picker and returns the chosen template.
// Declining (esc/q/ctrl+c) or a program failure reports ok=false; the
// caller falls back to skipping the match.
func (p *Prompter) pick(matches []string, query string) (string, bool) {
	program := tea.NewProgram(
		newPickerModel(matches, query, p.styles),
		tea.WithInput(p.rawIn),
		tea.WithOutput(p.rawOut),
	)

	final, err := program.Run()
	if err != nil {
		return p.selectNumbered(matches, query)
	}

	m, ok := final.(pickerModel)
	if !ok || !m.picked {
		return "", false
	}
	return m.choice, true
}
