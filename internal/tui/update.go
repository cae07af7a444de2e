package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"lifeos/internal/constants"
	"lifeos/internal/logger"
	"lifeos/internal/models"
	"lifeos/internal/tui/components/consistency"
	"lifeos/internal/tui/components/daily"
	"lifeos/internal/tui/components/library"
	"lifeos/internal/tui/components/plannerview"
	"lifeos/internal/tui/components/victories"
	"lifeos/internal/utils"
)

// RewardReadyMsg carries a fetched movie recommendation back into the model.
type RewardReadyMsg struct {
	ID   string
	Text string
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.isFormState() {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = m.previousState
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			m.applyForm()
			m.state = m.previousState
		case huh.StateAborted:
			m.state = m.previousState
		}
		return m, tea.Batch(cmds...)
	}

	if handled, model, cmd := m.updateConfirm(msg); handled {
		return model, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		listHeight := msg.Height - 4 // tabs + help

		h, v := docStyle.GetFrameSize()
		m.dailyModel.SetSize(msg.Width-h, listHeight-v)
		m.habitsModel.SetSize(msg.Width-h, listHeight-v)
		m.plannerModel.SetSize(msg.Width-h, listHeight-v)
		m.victoriesList.SetSize(msg.Width-h, listHeight-v)
		m.libraryList.SetSize(msg.Width-h, listHeight-v)

	case daily.AddTaskMsg:
		m.taskForm = &TaskFormModel{Weight: "10"}
		m.form = NewTaskForm(m.taskForm)
		m.previousState = m.state
		m.state = constants.StateAddTask
		return m, m.form.Init()

	case daily.ToggleTaskMsg:
		for i := range m.tasks {
			if m.tasks[i].ID == msg.ID {
				m.tasks[i].Completed = !m.tasks[i].Completed
				break
			}
		}
		m.saveTasks()
		return m, nil

	case daily.DeleteTaskMsg:
		m.taskToDeleteID = msg.ID
		m.state = constants.StateConfirmDeleteTask
		return m, nil

	case daily.ResetTasksMsg:
		m.state = constants.StateConfirmResetDay
		return m, nil

	case daily.LogDayMsg:
		m.logForm = &LogFormModel{Date: utils.Today()}
		m.form = NewLogForm(m.logForm)
		m.previousState = m.state
		m.state = constants.StateLogDay
		return m, m.form.Init()

	case consistency.CycleHabitMsg:
		for i := range m.habits {
			if m.habits[i].ID == msg.ID {
				m.habits[i].Cycle(msg.Date)
				break
			}
		}
		m.saveHabits()
		return m, nil

	case consistency.RenameHabitMsg:
		title := ""
		for _, h := range m.habits {
			if h.ID == msg.ID {
				title = h.Title
				break
			}
		}
		m.habitToRenameID = msg.ID
		m.renameForm = &RenameFormModel{Title: title}
		m.form = NewRenameForm(m.renameForm)
		m.previousState = m.state
		m.state = constants.StateRenameHabit
		return m, m.form.Init()

	case plannerview.AddGoalMsg:
		m.goalKey = msg.Key
		m.goalForm = &GoalFormModel{}
		m.form = NewGoalForm(m.goalForm)
		m.previousState = m.state
		m.state = constants.StateAddGoal
		return m, m.form.Init()

	case plannerview.ToggleGoalMsg:
		m.goals.Toggle(msg.Key, msg.ID)
		m.saveGoals()
		return m, nil

	case plannerview.RemoveGoalMsg:
		m.goals.Remove(msg.Key, msg.ID)
		m.saveGoals()
		return m, nil

	case victories.AddAchievementMsg:
		m.achievementForm = &AchievementFormModel{Date: utils.Today()}
		m.form = NewAchievementForm(m.achievementForm)
		m.previousState = m.state
		m.state = constants.StateAddAchievement
		return m, m.form.Init()

	case victories.DeleteAchievementMsg:
		m.achievementToDeleteID = msg.ID
		m.state = constants.StateConfirmDeleteAchievement
		return m, nil

	case library.AddBookMsg:
		m.bookForm = &BookFormModel{}
		m.form = NewBookForm(m.bookForm)
		m.previousState = m.state
		m.state = constants.StateAddBook
		return m, m.form.Init()

	case library.ProgressBookMsg:
		page := "0"
		for _, b := range m.books {
			if b.ID == msg.ID {
				page = strconv.Itoa(b.CurrentPage)
				break
			}
		}
		m.bookProgressID = msg.ID
		m.progressForm = &ProgressFormModel{Page: page}
		m.form = NewProgressForm(m.progressForm)
		m.previousState = m.state
		m.state = constants.StateBookProgress
		return m, m.form.Init()

	case library.ClaimRewardMsg:
		for i := range m.books {
			if m.books[i].ID != msg.ID {
				continue
			}
			if !m.books[i].RewardEligible() {
				return m, nil
			}
			// A recommendation is fetched once and kept forever.
			if m.books[i].RewardRecommendation != "" {
				m.books[i].RewardUnlocked = true
				m.saveBooks()
				return m, nil
			}
			m.libraryList.SetFetching(msg.ID, true)
			return m, m.fetchReward(m.books[i])
		}
		return m, nil

	case library.DeleteBookMsg:
		m.bookToDeleteID = msg.ID
		m.state = constants.StateConfirmDeleteBook
		return m, nil

	case RewardReadyMsg:
		m.libraryList.SetFetching(msg.ID, false)
		for i := range m.books {
			if m.books[i].ID == msg.ID {
				m.books[i].RewardUnlocked = true
				m.books[i].RewardRecommendation = msg.Text
				break
			}
		}
		m.saveBooks()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % constants.NumMainTabs
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + constants.NumMainTabs) % constants.NumMainTabs
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateDaily:
		m.dailyModel, cmd = m.dailyModel.Update(msg)
	case constants.StateHabits:
		m.habitsModel, cmd = m.habitsModel.Update(msg)
	case constants.StatePlanner:
		m.plannerModel, cmd = m.plannerModel.Update(msg)
	case constants.StateAchievements:
		m.victoriesList, cmd = m.victoriesList.Update(msg)
	case constants.StateLibrary:
		m.libraryList, cmd = m.libraryList.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) isFormState() bool {
	switch m.state {
	case constants.StateAddTask, constants.StateLogDay, constants.StateAddGoal,
		constants.StateRenameHabit, constants.StateAddAchievement,
		constants.StateAddBook, constants.StateBookProgress:
		return m.form != nil
	}
	return false
}

// applyForm commits a completed form. Form validators guarantee the numeric
// fields parse.
func (m *Model) applyForm() {
	switch m.state {
	case constants.StateAddTask:
		weight, _ := strconv.Atoi(strings.TrimSpace(m.taskForm.Weight))
		m.tasks = append(m.tasks, models.Task{
			ID:     uuid.NewString(),
			Title:  strings.TrimSpace(m.taskForm.Title),
			Weight: weight,
		})
		m.saveTasks()

	case constants.StateLogDay:
		m.history[strings.TrimSpace(m.logForm.Date)] = models.DayRecord{
			Score:    models.TotalScore(m.tasks),
			IsNature: m.logForm.Nature,
			Note:     strings.TrimSpace(m.logForm.Note),
		}
		m.saveHistory()

	case constants.StateAddGoal:
		m.goals.Add(m.goalKey, m.goalForm.Text)
		m.saveGoals()

	case constants.StateRenameHabit:
		for i := range m.habits {
			if m.habits[i].ID == m.habitToRenameID && m.habits[i].Renamable() {
				m.habits[i].Title = strings.TrimSpace(m.renameForm.Title)
				break
			}
		}
		m.saveHabits()

	case constants.StateAddAchievement:
		a := models.Achievement{
			ID:    uuid.NewString(),
			Title: strings.TrimSpace(m.achievementForm.Title),
			Story: strings.TrimSpace(m.achievementForm.Story),
			Date:  strings.TrimSpace(m.achievementForm.Date),
		}
		m.achievements = append([]models.Achievement{a}, m.achievements...)
		m.saveAchievements()

	case constants.StateAddBook:
		pages, _ := strconv.Atoi(strings.TrimSpace(m.bookForm.Pages))
		author := strings.TrimSpace(m.bookForm.Author)
		if author == "" {
			author = "Unknown"
		}
		m.books = append(m.books, models.Book{
			ID:         uuid.NewString(),
			Title:      strings.TrimSpace(m.bookForm.Title),
			Author:     author,
			TotalPages: pages,
		})
		m.saveBooks()

	case constants.StateBookProgress:
		page, _ := strconv.Atoi(strings.TrimSpace(m.progressForm.Page))
		for i := range m.books {
			if m.books[i].ID == m.bookProgressID {
				m.books[i].SetProgress(page)
				break
			}
		}
		m.saveBooks()
	}
}

// updateConfirm handles the yes/no overlays. Returns handled=false when the
// model is not in a confirm state.
func (m Model) updateConfirm(msg tea.Msg) (bool, tea.Model, tea.Cmd) {
	switch m.state {
	case constants.StateConfirmDeleteTask, constants.StateConfirmResetDay,
		constants.StateConfirmDeleteBook, constants.StateConfirmDeleteAchievement:
	default:
		return false, m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return true, m, nil
	}

	confirmed := false
	switch keyMsg.String() {
	case "y", "Y":
		confirmed = true
	case "n", "N", "esc", "q":
	default:
		return true, m, nil
	}

	if confirmed {
		switch m.state {
		case constants.StateConfirmDeleteTask:
			m.tasks = removeTask(m.tasks, m.taskToDeleteID)
			m.saveTasks()
		case constants.StateConfirmResetDay:
			for i := range m.tasks {
				m.tasks[i].Completed = false
			}
			m.saveTasks()
		case constants.StateConfirmDeleteBook:
			m.books = removeBook(m.books, m.bookToDeleteID)
			m.saveBooks()
		case constants.StateConfirmDeleteAchievement:
			m.achievements = removeAchievement(m.achievements, m.achievementToDeleteID)
			m.saveAchievements()
		}
	}

	switch m.state {
	case constants.StateConfirmDeleteTask, constants.StateConfirmResetDay:
		m.state = constants.StateDaily
	case constants.StateConfirmDeleteBook:
		m.state = constants.StateLibrary
	case constants.StateConfirmDeleteAchievement:
		m.state = constants.StateAchievements
	}
	m.taskToDeleteID = ""
	m.bookToDeleteID = ""
	m.achievementToDeleteID = ""
	return true, m, nil
}

func (m *Model) fetchReward(b models.Book) tea.Cmd {
	recommender := m.recommender
	return func() tea.Msg {
		text := recommender.MovieFor(context.Background(), b.Title, b.Author)
		return RewardReadyMsg{ID: b.ID, Text: text}
	}
}

func (m *Model) saveTasks() {
	if err := m.store.SaveTasks(m.tasks); err != nil {
		logger.Error("failed to save tasks", "error", err)
	}
	m.dailyModel.SetTasks(m.tasks)
}

func (m *Model) saveHistory() {
	if err := m.store.SaveHistory(m.history); err != nil {
		logger.Error("failed to save history", "error", err)
	}
	m.plannerModel.SetData(m.history, m.goals, m.achievements)
}

func (m *Model) saveGoals() {
	if err := m.store.SaveGoals(m.goals); err != nil {
		logger.Error("failed to save goals", "error", err)
	}
	m.plannerModel.SetData(m.history, m.goals, m.achievements)
}

func (m *Model) saveHabits() {
	if err := m.store.SaveHabits(m.habits); err != nil {
		logger.Error("failed to save habits", "error", err)
	}
	m.habitsModel.SetHabits(m.habits)
}

func (m *Model) saveAchievements() {
	if err := m.store.SaveAchievements(m.achievements); err != nil {
		logger.Error("failed to save achievements", "error", err)
	}
	m.victoriesList.SetAchievements(m.achievements)
	m.plannerModel.SetData(m.history, m.goals, m.achievements)
}

func (m *Model) saveBooks() {
	if err := m.store.SaveBooks(m.books); err != nil {
		logger.Error("failed to save books", "error", err)
	}
	m.libraryList.SetBooks(m.books)
}

func removeTask(tasks []models.Task, id string) []models.Task {
	out := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

func removeBook(books []models.Book, id string) []models.Book {
	out := books[:0]
	for _, b := range books {
		if b.ID != id {
			out = append(out, b)
		}
	}
	return out
}

func removeAchievement(achievements []models.Achievement, id string) []models.Achievement {
	out := achievements[:0]
	for _, a := range achievements {
		if a.ID != id {
			out = append(out, a)
		}
	}
	return out
}
