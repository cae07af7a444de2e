package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"lifeos/internal/constants"
	"lifeos/internal/logger"
	"lifeos/internal/models"
)

// DiskvStore keeps each collection as a JSON blob in a diskv directory.
type DiskvStore struct {
	path string
	d    *diskv.Diskv
}

func NewDiskvStore(configPath string) *DiskvStore {
	return &DiskvStore{
		path: configPath,
	}
}

func (s *DiskvStore) Init() error {
	if err := os.MkdirAll(s.path, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	s.open()
	return nil
}

func (s *DiskvStore) Load() error {
	if s.d != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
	}

	s.open()
	return nil
}

func (s *DiskvStore) Close() error {
	return nil
}

func (s *DiskvStore) open() {
	s.d = diskv.New(diskv.Options{
		BasePath:     s.path,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	})
}

// get decodes the named collection into v. A missing blob leaves v untouched;
// a malformed one is discarded with a warning so one bad file cannot take the
// whole dashboard down.
func (s *DiskvStore) get(key string, v any) error {
	if s.d == nil {
		return fmt.Errorf("storage not loaded")
	}
	if !s.d.Has(key) {
		return nil
	}

	data, err := s.d.Read(key)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		logger.Warn("discarding malformed collection", "collection", key, "error", err)
	}
	return nil
}

func (s *DiskvStore) put(key string, v any) error {
	if s.d == nil {
		return fmt.Errorf("storage not loaded")
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	if err := s.d.Write(key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *DiskvStore) GetTasks() ([]models.Task, error) {
	tasks := []models.Task{}
	if err := s.get(constants.CollectionTasks, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *DiskvStore) SaveTasks(tasks []models.Task) error {
	return s.put(constants.CollectionTasks, tasks)
}

func (s *DiskvStore) GetHistory() (models.History, error) {
	history := models.History{}
	if err := s.get(constants.CollectionHistory, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (s *DiskvStore) SaveHistory(history models.History) error {
	return s.put(constants.CollectionHistory, history)
}

func (s *DiskvStore) GetGoals() (models.GoalMap, error) {
	goals := models.GoalMap{}
	if err := s.get(constants.CollectionGoals, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (s *DiskvStore) SaveGoals(goals models.GoalMap) error {
	return s.put(constants.CollectionGoals, goals)
}

func (s *DiskvStore) GetHabits() ([]models.Habit, error) {
	var habits []models.Habit
	if err := s.get(constants.CollectionHabits, &habits); err != nil {
		return nil, err
	}
	return habitsOrDefault(habits), nil
}

func (s *DiskvStore) SaveHabits(habits []models.Habit) error {
	return s.put(constants.CollectionHabits, habits)
}

func (s *DiskvStore) GetAchievements() ([]models.Achievement, error) {
	achievements := []models.Achievement{}
	if err := s.get(constants.CollectionAchievements, &achievements); err != nil {
		return nil, err
	}
	return achievements, nil
}

func (s *DiskvStore) SaveAchievements(achievements []models.Achievement) error {
	return s.put(constants.CollectionAchievements, achievements)
}

func (s *DiskvStore) GetBooks() ([]models.Book, error) {
	books := []models.Book{}
	if err := s.get(constants.CollectionBooks, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (s *DiskvStore) SaveBooks(books []models.Book) error {
	return s.put(constants.CollectionBooks, books)
}

func (s *DiskvStore) GetConfigPath() string {
	return s.path
}
