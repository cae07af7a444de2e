package constants

// SessionState represents the current state of the TUI application
type SessionState int

// HabitStatus is the recorded state of a habit on a given day. A date with no
// entry is the implicit third state.
type HabitStatus string

const (
	AppName            = "lifeos"
	DefaultKeyringUser = "gemini-api-key"
	DefaultConfigPath  = "~/.config/lifeos"
	Version            = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// PlannerYear is the calendar year the planner hierarchy covers. Period keys
	// embed it, so changing it orphans previously stored goals.
	PlannerYear = 2026

	// RewardUnlockPercent is the reading progress required to claim a book's reward.
	RewardUnlockPercent = 80

	// Habit statuses
	HabitDone   HabitStatus = "done"
	HabitMissed HabitStatus = "missed"

	// Collection names used by the persistence layer
	CollectionTasks        = "tasks"
	CollectionBooks        = "books"
	CollectionGoals        = "goals"
	CollectionHistory      = "history"
	CollectionHabits       = "habits"
	CollectionAchievements = "achievements"
)

// Session States
const (
	StateDaily SessionState = iota
	StateHabits
	StatePlanner
	StateAchievements
	StateLibrary
	StateAddTask
	StateLogDay
	StateAddGoal
	StateRenameHabit
	StateAddAchievement
	StateAddBook
	StateBookProgress
	StateConfirmDeleteTask
	StateConfirmResetDay
	StateConfirmDeleteBook
	StateConfirmDeleteAchievement
)

// NumMainTabs is the count of top-level views cycled with tab/shift+tab.
const NumMainTabs = 5
