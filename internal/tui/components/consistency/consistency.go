package consistency

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lifeos/internal/constants"
	"lifeos/internal/models"
	"lifeos/internal/planner"
)

// CycleHabitMsg advances the habit's state for a date: empty, done, missed.
type CycleHabitMsg struct {
	ID   string
	Date string
}

type RenameHabitMsg struct {
	ID string
}

type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Cycle     key.Binding
	Rename    key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev habit")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next habit")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Cycle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "cycle")),
		Rename: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rename"),
		),
		PrevMonth: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next month")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	missedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	// The same palette names the web-era data files used.
	habitColors = map[string]lipgloss.Style{
		"rose":   lipgloss.NewStyle().Foreground(lipgloss.Color("211")),
		"cyan":   lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		"violet": lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
	}
)

// Model is the tri-state habit grid for one month of the planner year.
type Model struct {
	habits   []models.Habit
	keys     KeyMap
	month    int // 1-12
	habitIdx int
	dayIdx   int // 0-based day of month
	width    int
}

func New(habits []models.Habit, width, height int) Model {
	m := Model{
		habits: habits,
		keys:   DefaultKeyMap(),
		month:  1,
		width:  width,
	}
	m.jumpToday()
	return m
}

// jumpToday moves the cursor to today when today falls inside the planner
// year; otherwise the grid stays on January 1st.
func (m *Model) jumpToday() {
	now := time.Now()
	m.month = 1
	m.dayIdx = 0
	if now.Year() == constants.PlannerYear {
		m.month = int(now.Month())
		m.dayIdx = now.Day() - 1
	}
}

func (m *Model) SetHabits(habits []models.Habit) {
	m.habits = habits
	if m.habitIdx >= len(habits) {
		m.habitIdx = 0
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
}

// SelectedDate is the ISO date under the cursor.
func (m Model) SelectedDate() string {
	return fmt.Sprintf("%d-%02d-%02d", constants.PlannerYear, m.month, m.dayIdx+1)
}

func (m Model) Selected() (models.Habit, bool) {
	if len(m.habits) == 0 {
		return models.Habit{}, false
	}
	return m.habits[m.habitIdx], true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.habitIdx > 0 {
			m.habitIdx--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.habitIdx < len(m.habits)-1 {
			m.habitIdx++
		}
	case key.Matches(keyMsg, m.keys.Left):
		if m.dayIdx > 0 {
			m.dayIdx--
		}
	case key.Matches(keyMsg, m.keys.Right):
		if m.dayIdx < planner.DaysInMonth(m.month)-1 {
			m.dayIdx++
		}
	case key.Matches(keyMsg, m.keys.PrevMonth):
		if m.month > 1 {
			m.month--
			m.clampDay()
		}
	case key.Matches(keyMsg, m.keys.NextMonth):
		if m.month < 12 {
			m.month++
			m.clampDay()
		}
	case key.Matches(keyMsg, m.keys.Today):
		m.jumpToday()
	case key.Matches(keyMsg, m.keys.Cycle):
		if h, ok := m.Selected(); ok {
			date := m.SelectedDate()
			return m, func() tea.Msg { return CycleHabitMsg{ID: h.ID, Date: date} }
		}
	case key.Matches(keyMsg, m.keys.Rename):
		if h, ok := m.Selected(); ok && h.Renamable() {
			return m, func() tea.Msg { return RenameHabitMsg{ID: h.ID} }
		}
	}
	return m, nil
}

func (m *Model) clampDay() {
	if last := planner.DaysInMonth(m.month) - 1; m.dayIdx > last {
		m.dayIdx = last
	}
}

func (m Model) View() string {
	var b strings.Builder

	monthName := time.Month(m.month).String()
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %d", monthName, constants.PlannerYear)))
	b.WriteString(faintStyle.Render("   [ and ] change month"))
	b.WriteString("\n\n")

	days := planner.DaysInMonth(m.month)
	for hi, h := range m.habits {
		style, ok := habitColors[h.Color]
		if !ok {
			style = titleStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%-16s", truncate(h.Title, 16))))

		for d := 0; d < days; d++ {
			date := fmt.Sprintf("%d-%02d-%02d", constants.PlannerYear, m.month, d+1)
			cell := glyph(h.History[date])
			if hi == m.habitIdx && d == m.dayIdx {
				cell = cursorStyle.Render(cell)
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}

	if h, ok := m.Selected(); ok {
		status := h.History[m.SelectedDate()]
		b.WriteString("\n")
		b.WriteString(faintStyle.Render(fmt.Sprintf("%s on %s: %s", h.Title, m.SelectedDate(), statusLabel(status))))
	}
	return b.String()
}

func glyph(status constants.HabitStatus) string {
	switch status {
	case constants.HabitDone:
		return doneStyle.Render("■")
	case constants.HabitMissed:
		return missedStyle.Render("✗")
	}
	return faintStyle.Render("·")
}

func statusLabel(status constants.HabitStatus) string {
	switch status {
	case constants.HabitDone:
		return "done"
	case constants.HabitMissed:
		return "missed"
	}
	return "unmarked"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
