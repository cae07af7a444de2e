package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"lifeos/internal/constants"
	"lifeos/internal/models"
	"lifeos/internal/reward"
	"lifeos/internal/storage"
	"lifeos/internal/tui/components/consistency"
	"lifeos/internal/tui/components/daily"
	"lifeos/internal/tui/components/library"
	"lifeos/internal/tui/components/plannerview"
	"lifeos/internal/tui/components/victories"
)

type Model struct {
	store       storage.Provider
	recommender reward.Recommender

	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model

	// Canonical collections. Components get copies pushed after every mutation.
	tasks        []models.Task
	history      models.History
	goals        models.GoalMap
	habits       []models.Habit
	achievements []models.Achievement
	books        []models.Book

	dailyModel    daily.Model
	habitsModel   consistency.Model
	plannerModel  plannerview.Model
	victoriesList victories.Model
	libraryList   library.Model

	form            *huh.Form
	taskForm        *TaskFormModel
	logForm         *LogFormModel
	goalForm        *GoalFormModel
	renameForm      *RenameFormModel
	achievementForm *AchievementFormModel
	bookForm        *BookFormModel
	progressForm    *ProgressFormModel

	goalKey               string
	habitToRenameID       string
	bookProgressID        string
	taskToDeleteID        string
	bookToDeleteID        string
	achievementToDeleteID string

	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider, recommender reward.Recommender) Model {
	tasks, _ := store.GetTasks()
	history, _ := store.GetHistory()
	goals, _ := store.GetGoals()
	habits, _ := store.GetHabits()
	achievements, _ := store.GetAchievements()
	books, _ := store.GetBooks()

	if history == nil {
		history = models.History{}
	}
	if goals == nil {
		goals = models.GoalMap{}
	}

	return Model{
		store:         store,
		recommender:   recommender,
		state:         constants.StateDaily,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		tasks:         tasks,
		history:       history,
		goals:         goals,
		habits:        habits,
		achievements:  achievements,
		books:         books,
		dailyModel:    daily.New(tasks, 0, 0),
		habitsModel:   consistency.New(habits, 0, 0),
		plannerModel:  plannerview.New(history, goals, achievements, 0, 0),
		victoriesList: victories.New(achievements, 0, 0),
		libraryList:   library.New(books, 0, 0),
	}
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
