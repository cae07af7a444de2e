package daily

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lifeos/internal/models"
)

type AddTaskMsg struct{}

type ToggleTaskMsg struct {
	ID string
}

type DeleteTaskMsg struct {
	ID string
}

type ResetTasksMsg struct{}

// LogDayMsg asks for today's score to be written into the history.
type LogDayMsg struct{}

type Item struct {
	Task models.Task
}

func (i Item) Title() string {
	if i.Task.Completed {
		return "✓ " + i.Task.Title
	}
	return "○ " + i.Task.Title
}

func (i Item) Description() string {
	return fmt.Sprintf("%d%% of the day", i.Task.Weight)
}

func (i Item) FilterValue() string { return i.Task.Title }

type KeyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Delete key.Binding
	Reset  key.Binding
	Log    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add task"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset day"),
		),
		Log: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "log day"),
		),
	}
}

var (
	scoreStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	faintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type Model struct {
	list  list.Model
	keys  KeyMap
	tasks []models.Task
}

func New(tasks []models.Task, width, height int) Model {
	l := list.New(toItems(tasks), list.NewDefaultDelegate(), width, height)
	l.Title = "Daily Protocol"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Delete, keys.Reset, keys.Log}
	}

	return Model{list: l, keys: keys, tasks: tasks}
}

func toItems(tasks []models.Task) []list.Item {
	items := make([]list.Item, len(tasks))
	for i, t := range tasks {
		items[i] = Item{Task: t}
	}
	return items
}

func (m *Model) SetTasks(tasks []models.Task) {
	m.tasks = tasks
	m.list.SetItems(toItems(tasks))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height-2)
}

func (m Model) Selected() (models.Task, bool) {
	item, ok := m.list.SelectedItem().(Item)
	if !ok {
		return models.Task{}, false
	}
	return item.Task, true
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
			return m, func() tea.Msg { return AddTaskMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if t, ok := m.Selected(); ok {
				return m, func() tea.Msg { return ToggleTaskMsg{ID: t.ID} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			if t, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteTaskMsg{ID: t.ID} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Reset):
			return m, func() tea.Msg { return ResetTasksMsg{} }
		case key.Matches(msg, m.keys.Log):
			return m, func() tea.Msg { return LogDayMsg{} }
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	score := models.TotalScore(m.tasks)
	capacity := models.Capacity(m.tasks)
	header := scoreStyle.Render(fmt.Sprintf("Score %d", score)) +
		faintStyle.Render(fmt.Sprintf(" / %d planned", capacity))
	return lipgloss.JoinVertical(lipgloss.Left, header, m.list.View())
}
