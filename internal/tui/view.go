package tui

import (
	"github.com/charmbracelet/lipgloss"

	"lifeos/internal/constants"
)

var tabTitles = []string{"Daily", "Habits", "Planner", "Victories", "Library"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateDaily:
		content = docStyle.Render(m.dailyModel.View())
	case constants.StateHabits:
		content = docStyle.Render(m.habitsModel.View())
	case constants.StatePlanner:
		content = docStyle.Render(m.plannerModel.View())
	case constants.StateAchievements:
		content = docStyle.Render(m.victoriesList.View())
	case constants.StateLibrary:
		content = docStyle.Render(m.libraryList.View())
	case constants.StateConfirmDeleteTask:
		content = m.viewConfirm("Delete this task?")
	case constants.StateConfirmResetDay:
		content = m.viewConfirm("Uncheck every task for a fresh day?")
	case constants.StateConfirmDeleteBook:
		content = m.viewConfirm("Remove this book from the library?")
	case constants.StateConfirmDeleteAchievement:
		content = m.viewConfirm("Delete this victory?")
	default:
		if m.form != nil {
			content = m.form.View()
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range tabTitles {
		if m.state == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewConfirm(question string) string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(question),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
