package migration

import (
	"fmt"

	"lifeos/internal/logger"
	"lifeos/internal/storage"
)

// Run rewrites every collection in the current storage format. The read path
// already normalizes legacy blobs (bare-integer history scores from the web
// era) and seeds the default habits when none are stored; re-saving makes
// those upgrades permanent so old data never has to be interpreted again.
func Run(store storage.Provider) error {
	tasks, err := store.GetTasks()
	if err != nil {
		return fmt.Errorf("migrate tasks: %w", err)
	}
	if err := store.SaveTasks(tasks); err != nil {
		return fmt.Errorf("migrate tasks: %w", err)
	}

	history, err := store.GetHistory()
	if err != nil {
		return fmt.Errorf("migrate history: %w", err)
	}
	if err := store.SaveHistory(history); err != nil {
		return fmt.Errorf("migrate history: %w", err)
	}

	goals, err := store.GetGoals()
	if err != nil {
		return fmt.Errorf("migrate goals: %w", err)
	}
	if err := store.SaveGoals(goals); err != nil {
		return fmt.Errorf("migrate goals: %w", err)
	}

	habits, err := store.GetHabits()
	if err != nil {
		return fmt.Errorf("migrate habits: %w", err)
	}
	if err := store.SaveHabits(habits); err != nil {
		return fmt.Errorf("migrate habits: %w", err)
	}

	achievements, err := store.GetAchievements()
	if err != nil {
		return fmt.Errorf("migrate achievements: %w", err)
	}
	if err := store.SaveAchievements(achievements); err != nil {
		return fmt.Errorf("migrate achievements: %w", err)
	}

	books, err := store.GetBooks()
	if err != nil {
		return fmt.Errorf("migrate books: %w", err)
	}
	if err := store.SaveBooks(books); err != nil {
		return fmt.Errorf("migrate books: %w", err)
	}

	logger.Info("storage migration complete",
		"tasks", len(tasks),
		"days", len(history),
		"habits", len(habits),
		"achievements", len(achievements),
		"books", len(books))
	return nil
}
