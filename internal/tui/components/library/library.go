package library

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lifeos/internal/models"
)

type AddBookMsg struct{}

type ProgressBookMsg struct {
	ID string
}

// ClaimRewardMsg asks for the movie reward of a finished book.
type ClaimRewardMsg struct {
	ID string
}

type DeleteBookMsg struct {
	ID string
}

type Item struct {
	Book models.Book
}

func (i Item) Title() string {
	return fmt.Sprintf("%s by %s", i.Book.Title, i.Book.Author)
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%d/%d pages (%d%%)", i.Book.CurrentPage, i.Book.TotalPages, i.Book.Percent())
	switch {
	case i.Book.RewardUnlocked:
		return desc + "  🎬 reward claimed"
	case i.Book.RewardEligible():
		return desc + "  🎁 reward ready, press g"
	}
	return desc
}

func (i Item) FilterValue() string { return i.Book.Title }

type KeyMap struct {
	Add      key.Binding
	Progress key.Binding
	Reward   key.Binding
	Delete   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add book"),
		),
		Progress: key.NewBinding(
			key.WithKeys("p", "enter"),
			key.WithHelp("p", "update progress"),
		),
		Reward: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "claim reward"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

var (
	rewardStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Italic(true)
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

type Model struct {
	list list.Model
	keys KeyMap

	// fetching holds book IDs with a recommendation request in flight.
	fetching map[string]bool
}

func New(books []models.Book, width, height int) Model {
	l := list.New(toItems(books), list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Progress, keys.Reward, keys.Delete}
	}

	return Model{list: l, keys: keys, fetching: make(map[string]bool)}
}

func toItems(books []models.Book) []list.Item {
	items := make([]list.Item, len(books))
	for i, b := range books {
		items[i] = Item{Book: b}
	}
	return items
}

func (m *Model) SetBooks(books []models.Book) {
	m.list.SetItems(toItems(books))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height-3)
}

func (m *Model) SetFetching(id string, inFlight bool) {
	if inFlight {
		m.fetching[id] = true
	} else {
		delete(m.fetching, id)
	}
}

func (m Model) Selected() (models.Book, bool) {
	item, ok := m.list.SelectedItem().(Item)
	if !ok {
		return models.Book{}, false
	}
	return item.Book, true
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
			return m, func() tea.Msg { return AddBookMsg{} }
		case key.Matches(msg, m.keys.Progress):
			if b, ok := m.Selected(); ok {
				return m, func() tea.Msg { return ProgressBookMsg{ID: b.ID} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Reward):
			if b, ok := m.Selected(); ok && b.RewardEligible() && !m.fetching[b.ID] {
				return m, func() tea.Msg { return ClaimRewardMsg{ID: b.ID} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			if b, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteBookMsg{ID: b.ID} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	footer := ""
	if b, ok := m.Selected(); ok {
		switch {
		case m.fetching[b.ID]:
			footer = pendingStyle.Render("Consulting the Oracle…")
		case b.RewardRecommendation != "":
			footer = rewardStyle.Render("🎬 " + b.RewardRecommendation)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.list.View(), footer)
}
