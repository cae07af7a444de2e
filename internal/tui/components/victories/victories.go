package victories

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"lifeos/internal/models"
)

type AddAchievementMsg struct{}

type DeleteAchievementMsg struct {
	ID string
}

type Item struct {
	Achievement models.Achievement
}

func (i Item) Title() string {
	return "★ " + i.Achievement.Title
}

func (i Item) Description() string {
	return i.Achievement.Date + "  " + i.Achievement.Story
}

func (i Item) FilterValue() string { return i.Achievement.Title }

type KeyMap struct {
	Add    key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "log victory"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

// Model lists achievements newest first.
type Model struct {
	list list.Model
	keys KeyMap
}

func New(achievements []models.Achievement, width, height int) Model {
	l := list.New(toItems(achievements), list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func toItems(achievements []models.Achievement) []list.Item {
	items := make([]list.Item, len(achievements))
	for i, a := range achievements {
		items[i] = Item{Achievement: a}
	}
	return items
}

func (m *Model) SetAchievements(achievements []models.Achievement) {
	m.list.SetItems(toItems(achievements))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Selected() (models.Achievement, bool) {
	item, ok := m.list.SelectedItem().(Item)
	if !ok {
		return models.Achievement{}, false
	}
	return item.Achievement, true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		// While filtering, keystrokes belong to the filter input.
		if m.list.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddAchievementMsg{} }
		case key.Matches(msg, m.keys.Delete):
			if a, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteAchievementMsg{ID: a.ID} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
