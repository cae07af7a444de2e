package plannerview

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

type AddGoalMsg struct {
	Key string
}

type ToggleGoalMsg struct {
	Key string
	ID  string
}

type RemoveGoalMsg struct {
	Key string
	ID  string
}

type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Drill      key.Binding
	Back       key.Binding
	Year       key.Binding
	PrevGoal   key.Binding
	NextGoal   key.Binding
	AddGoal    key.Binding
	ToggleGoal key.Binding
	RemoveGoal key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Drill:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:       key.NewBinding(key.WithKeys("backspace"), key.WithHelp("bksp", "up a level")),
		Year:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "year view")),
		PrevGoal:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev goal")),
		NextGoal:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next goal")),
		AddGoal:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add goal")),
		ToggleGoal: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle goal")),
		RemoveGoal: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove goal")),
	}
}

var (
	crumbStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	faintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle   = lipgloss.NewStyle().Reverse(true)
	natureStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	headingStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Strikethrough(true)
)

// child is one selectable cell of the drill-down grid.
type child struct {
	label      string
	coord      int
	selectable bool
}

// Model renders the drill-down over the planner year. Navigation state lives
// here for the session only; goal edits are emitted for persistence.
type Model struct {
	nav          planner.Navigator
	history      models.History
	goals        models.GoalMap
	achievements []models.Achievement
	keys         KeyMap
	cursor       int
	goalCursor   int
	width        int
}

func New(history models.History, goals models.GoalMap, achievements []models.Achievement, width, height int) Model {
	return Model{
		nav:          planner.Navigator{},
		history:      history,
		goals:        goals,
		achievements: achievements,
		keys:         DefaultKeyMap(),
		width:        width,
	}
}

func (m *Model) SetData(history models.History, goals models.GoalMap, achievements []models.Achievement) {
	m.history = history
	m.goals = goals
	m.achievements = achievements
	m.clampGoalCursor()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
}

// Key is the period key of the current position.
func (m Model) Key() string {
	return m.nav.Key()
}

func (m Model) children() []child {
	switch m.nav.Level() {
	case planner.LevelYear:
		out := make([]child, 12)
		for i := 0; i < 12; i++ {
			out[i] = child{label: time.Month(i + 1).String()[:3], coord: i + 1, selectable: true}
		}
		return out
	case planner.LevelMonth:
		out := make([]child, 5)
		for i := 0; i < 5; i++ {
			w := i + 1
			out[i] = child{
				label:      fmt.Sprintf("W%d", w),
				coord:      w,
				selectable: (w-1)*7+1 <= planner.DaysInMonth(m.nav.Month()),
			}
		}
		return out
	case planner.LevelWeek:
		labels := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
		out := make([]child, 7)
		for i := 0; i < 7; i++ {
			_, ok := planner.ResolveDate(m.nav.Month(), m.nav.Week(), i)
			out[i] = child{label: labels[i], coord: i, selectable: ok}
		}
		return out
	}
	return nil
}

// childLevel is the level the children of the current position live at.
func (m Model) childLevel() planner.Level {
	return m.nav.Level() + 1
}

func (m Model) currentGoals() []models.Goal {
	return m.goals[m.nav.Key()]
}

func (m *Model) clampGoalCursor() {
	if n := len(m.currentGoals()); m.goalCursor >= n {
		m.goalCursor = 0
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	children := m.children()
	switch {
	case key.Matches(keyMsg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Right):
		if m.cursor < len(children)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Drill):
		if m.cursor < len(children) && m.nav.Drill(children[m.cursor].coord) {
			m.cursor = 0
			m.goalCursor = 0
		}
	case key.Matches(keyMsg, m.keys.Back):
		if m.nav.Back() {
			m.cursor = 0
			m.goalCursor = 0
		}
	case key.Matches(keyMsg, m.keys.Year):
		m.nav.JumpTo(planner.LevelYear)
		m.cursor = 0
		m.goalCursor = 0
	case key.Matches(keyMsg, m.keys.PrevGoal):
		if m.goalCursor > 0 {
			m.goalCursor--
		}
	case key.Matches(keyMsg, m.keys.NextGoal):
		if m.goalCursor < len(m.currentGoals())-1 {
			m.goalCursor++
		}
	case key.Matches(keyMsg, m.keys.AddGoal):
		periodKey := m.nav.Key()
		return m, func() tea.Msg { return AddGoalMsg{Key: periodKey} }
	case key.Matches(keyMsg, m.keys.ToggleGoal):
		if goals := m.currentGoals(); m.goalCursor < len(goals) {
			periodKey, id := m.nav.Key(), goals[m.goalCursor].ID
			return m, func() tea.Msg { return ToggleGoalMsg{Key: periodKey, ID: id} }
		}
	case key.Matches(keyMsg, m.keys.RemoveGoal):
		if goals := m.currentGoals(); m.goalCursor < len(goals) {
			periodKey, id := m.nav.Key(), goals[m.goalCursor].ID
			return m, func() tea.Msg { return RemoveGoalMsg{Key: periodKey, ID: id} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.breadcrumb())
	b.WriteString("\n\n")

	summary := planner.Aggregate(m.history, m.nav.Level(), m.nav.Month(), m.nav.Week(), m.nav.Day())
	b.WriteString(renderSummary(summary))
	b.WriteString("\n\n")

	if children := m.children(); len(children) > 0 {
		for i, c := range children {
			b.WriteString(m.renderChild(i, c))
			b.WriteString("  ")
		}
		b.WriteString("\n\n")
	}

	achievements := planner.AchievementsFor(m.achievements, m.nav.Level(), m.nav.Month(), m.nav.Week(), m.nav.Day())
	if len(achievements) > 0 {
		b.WriteString(headingStyle.Render("Victories"))
		b.WriteString("\n")
		for _, a := range achievements {
			b.WriteString(fmt.Sprintf("  ★ %s  %s\n", a.Date, a.Title))
		}
		b.WriteString("\n")
	}

	b.WriteString(headingStyle.Render("Goals"))
	b.WriteString("\n")
	goals := m.currentGoals()
	if len(goals) == 0 {
		b.WriteString(faintStyle.Render("  no goals here yet, press a to add one"))
		b.WriteString("\n")
	}
	for i, g := range goals {
		mark := "○"
		if g.Completed {
			mark = "✓"
		}
		line := fmt.Sprintf("%s %s", mark, g.Text)
		if i == m.goalCursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString("  " + line + "\n")
	}

	return b.String()
}

func (m Model) breadcrumb() string {
	parts := []string{fmt.Sprintf("%d", constants.PlannerYear)}
	if m.nav.Level() >= planner.LevelMonth {
		parts = append(parts, time.Month(m.nav.Month()).String())
	}
	if m.nav.Level() >= planner.LevelWeek {
		parts = append(parts, fmt.Sprintf("Week %d", m.nav.Week()))
	}
	if m.nav.Level() >= planner.LevelDay {
		if date, ok := planner.ResolveDate(m.nav.Month(), m.nav.Week(), m.nav.Day()); ok {
			parts = append(parts, date)
		}
	}
	return crumbStyle.Render(strings.Join(parts, " › "))
}

func (m Model) renderChild(i int, c child) string {
	if !c.selectable {
		return disabledStyle.Render(c.label)
	}

	summary := m.childSummary(c)
	label := c.label
	if summary.Exists {
		if summary.IsNature {
			label += natureStyle.Render(" ✦")
		} else {
			label += faintStyle.Render(fmt.Sprintf(" %d", summary.Score))
		}
	}
	if m.childHasAchievements(c) {
		label += " ★"
	}

	if i == m.cursor {
		return cursorStyle.Render(label)
	}
	return label
}

func (m Model) childSummary(c child) planner.Summary {
	switch m.childLevel() {
	case planner.LevelMonth:
		return planner.Aggregate(m.history, planner.LevelMonth, c.coord, 0, 0)
	case planner.LevelWeek:
		return planner.Aggregate(m.history, planner.LevelWeek, m.nav.Month(), c.coord, 0)
	case planner.LevelDay:
		return planner.Aggregate(m.history, planner.LevelDay, m.nav.Month(), m.nav.Week(), c.coord)
	}
	return planner.Summary{}
}

func (m Model) childHasAchievements(c child) bool {
	switch m.childLevel() {
	case planner.LevelMonth:
		return len(planner.AchievementsFor(m.achievements, planner.LevelMonth, c.coord, 0, 0)) > 0
	case planner.LevelWeek:
		return len(planner.AchievementsFor(m.achievements, planner.LevelWeek, m.nav.Month(), c.coord, 0)) > 0
	case planner.LevelDay:
		return len(planner.AchievementsFor(m.achievements, planner.LevelDay, m.nav.Month(), m.nav.Week(), c.coord)) > 0
	}
	return false
}

func renderSummary(s planner.Summary) string {
	if !s.Exists {
		return faintStyle.Render("no data yet")
	}
	if s.IsNature {
		return natureStyle.Render("✦ nature day, counts as a full score")
	}
	return fmt.Sprintf("average score %d", s.Score)
}
