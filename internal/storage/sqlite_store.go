package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"lifeos/internal/constants"
	"lifeos/internal/logger"
	"lifeos/internal/models"
)

// SQLiteStore keeps the collections as JSON blobs in a single key/value
// table. Selected when the config path ends in .db.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	_, err = s.db.Exec(`CREATE TABLE IF NOT EXISTS collections (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// get decodes the named collection into v. Missing rows leave v untouched;
// malformed ones are discarded with a warning.
func (s *SQLiteStore) get(key string, v any) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	var value string
	err := s.db.QueryRow("SELECT value FROM collections WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(value), v); err != nil {
		logger.Warn("discarding malformed collection", "collection", key, "error", err)
	}
	return nil
}

func (s *SQLiteStore) put(key string, v any) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	_, err = s.db.Exec("INSERT OR REPLACE INTO collections (key, value) VALUES (?, ?)", key, string(data))
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) GetTasks() ([]models.Task, error) {
	tasks := []models.Task{}
	if err := s.get(constants.CollectionTasks, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *SQLiteStore) SaveTasks(tasks []models.Task) error {
	return s.put(constants.CollectionTasks, tasks)
}

func (s *SQLiteStore) GetHistory() (models.History, error) {
	history := models.History{}
	if err := s.get(constants.CollectionHistory, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (s *SQLiteStore) SaveHistory(history models.History) error {
	return s.put(constants.CollectionHistory, history)
}

func (s *SQLiteStore) GetGoals() (models.GoalMap, error) {
	goals := models.GoalMap{}
	if err := s.get(constants.CollectionGoals, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (s *SQLiteStore) SaveGoals(goals models.GoalMap) error {
	return s.put(constants.CollectionGoals, goals)
}

func (s *SQLiteStore) GetHabits() ([]models.Habit, error) {
	var habits []models.Habit
	if err := s.get(constants.CollectionHabits, &habits); err != nil {
		return nil, err
	}
	return habitsOrDefault(habits), nil
}

func (s *SQLiteStore) SaveHabits(habits []models.Habit) error {
	return s.put(constants.CollectionHabits, habits)
}

func (s *SQLiteStore) GetAchievements() ([]models.Achievement, error) {
	achievements := []models.Achievement{}
	if err := s.get(constants.CollectionAchievements, &achievements); err != nil {
		return nil, err
	}
	return achievements, nil
}

func (s *SQLiteStore) SaveAchievements(achievements []models.Achievement) error {
	return s.put(constants.CollectionAchievements, achievements)
}

func (s *SQLiteStore) GetBooks() ([]models.Book, error) {
	books := []models.Book{}
	if err := s.get(constants.CollectionBooks, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (s *SQLiteStore) SaveBooks(books []models.Book) error {
	return s.put(constants.CollectionBooks, books)
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
