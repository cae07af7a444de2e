package storage

import "lifeos/internal/models"

// Provider persists each collection as an independent named snapshot. A Save
// replaces the stored collection whole, so readers never see partial writes.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Tasks
	GetTasks() ([]models.Task, error)
	SaveTasks([]models.Task) error

	// History
	GetHistory() (models.History, error)
	SaveHistory(models.History) error

	// Goals
	GetGoals() (models.GoalMap, error)
	SaveGoals(models.GoalMap) error

	// Habits
	GetHabits() ([]models.Habit, error)
	SaveHabits([]models.Habit) error

	// Achievements
	GetAchievements() ([]models.Achievement, error)
	SaveAchievements([]models.Achievement) error

	// Books
	GetBooks() ([]models.Book, error)
	SaveBooks([]models.Book) error

	// Utils
	GetConfigPath() string
}

// habitsOrDefault substitutes the seed habits when none have been stored.
func habitsOrDefault(habits []models.Habit) []models.Habit {
	if len(habits) == 0 {
		return models.DefaultHabits()
	}
	return habits
}
