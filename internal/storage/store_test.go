package storage

import (
	"os"
	"path/filepath"
	"testing"

	"lifeos/internal/constants"
	"lifeos/internal/models"
)

func newStores(t *testing.T) map[string]Provider {
	t.Helper()
	dir := t.TempDir()
	return map[string]Provider{
		"diskv":  NewDiskvStore(filepath.Join(dir, "data")),
		"sqlite": NewSQLiteStore(filepath.Join(dir, "lifeos.db")),
	}
}

func TestLoadBeforeInitFails(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Load(); err == nil {
				t.Error("expected error loading uninitialized storage")
			}
		})
	}
}

func TestTaskRoundTrip(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			initStore(t, store)

			tasks, err := store.GetTasks()
			if err != nil {
				t.Fatalf("GetTasks: %v", err)
			}
			if len(tasks) != 0 {
				t.Fatalf("fresh store has %d tasks", len(tasks))
			}

			want := []models.Task{
				{ID: "t1", Title: "Deep work", Weight: 40, Completed: true},
				{ID: "t2", Title: "Exercise", Weight: 20},
			}
			if err := store.SaveTasks(want); err != nil {
				t.Fatalf("SaveTasks: %v", err)
			}

			got, err := store.GetTasks()
			if err != nil {
				t.Fatalf("GetTasks: %v", err)
			}
			if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
				t.Errorf("got %+v, want %+v", got, want)
			}
		})
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			initStore(t, store)

			want := models.History{
				"2026-01-05": {Score: 60},
				"2026-01-06": {Score: 100, IsNature: true, Note: "lake"},
			}
			if err := store.SaveHistory(want); err != nil {
				t.Fatalf("SaveHistory: %v", err)
			}

			got, err := store.GetHistory()
			if err != nil {
				t.Fatalf("GetHistory: %v", err)
			}
			if len(got) != 2 || got["2026-01-06"].Note != "lake" {
				t.Errorf("got %+v", got)
			}
		})
	}
}

func TestGoalsAndBooksAndAchievements(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			initStore(t, store)

			goals := models.GoalMap{}
			goals.Add("2026-03", "Ship it")
			if err := store.SaveGoals(goals); err != nil {
				t.Fatalf("SaveGoals: %v", err)
			}
			gotGoals, err := store.GetGoals()
			if err != nil || len(gotGoals["2026-03"]) != 1 {
				t.Fatalf("GetGoals: %v %+v", err, gotGoals)
			}

			books := []models.Book{{ID: "b1", Title: "Dune", Author: "Herbert", TotalPages: 412, CurrentPage: 399}}
			if err := store.SaveBooks(books); err != nil {
				t.Fatalf("SaveBooks: %v", err)
			}
			gotBooks, err := store.GetBooks()
			if err != nil || len(gotBooks) != 1 || gotBooks[0].Title != "Dune" {
				t.Fatalf("GetBooks: %v %+v", err, gotBooks)
			}

			achievements := []models.Achievement{{ID: "a1", Date: "2026-03-15", Title: "First 5k", Story: "Ran it"}}
			if err := store.SaveAchievements(achievements); err != nil {
				t.Fatalf("SaveAchievements: %v", err)
			}
			gotAch, err := store.GetAchievements()
			if err != nil || len(gotAch) != 1 {
				t.Fatalf("GetAchievements: %v %+v", err, gotAch)
			}
		})
	}
}

func TestHabitsDefaultSeed(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			initStore(t, store)

			habits, err := store.GetHabits()
			if err != nil {
				t.Fatalf("GetHabits: %v", err)
			}
			if len(habits) != 3 || habits[0].ID != models.GymHabitID {
				t.Fatalf("expected default seed, got %+v", habits)
			}

			habits[1].Title = "Guitar"
			habits[1].Set("2026-02-10", constants.HabitDone)
			if err := store.SaveHabits(habits); err != nil {
				t.Fatalf("SaveHabits: %v", err)
			}

			got, err := store.GetHabits()
			if err != nil {
				t.Fatalf("GetHabits: %v", err)
			}
			if got[1].Title != "Guitar" || got[1].History["2026-02-10"] != constants.HabitDone {
				t.Errorf("stored habits not returned: %+v", got[1])
			}
		})
	}
}

func TestLegacyHistoryNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data")
	store := NewDiskvStore(path)
	initStore(t, store)

	// Bare-integer entries from older data files.
	legacy := []byte(`{"2026-01-05":60,"2026-01-06":{"score":100,"isNature":true}}`)
	if err := os.WriteFile(filepath.Join(path, constants.CollectionHistory), legacy, 0600); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetHistory()
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}
	if got["2026-01-05"] != (models.DayRecord{Score: 60}) {
		t.Errorf("legacy entry = %+v", got["2026-01-05"])
	}
}

func TestMalformedCollectionFailsSoft(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data")
	store := NewDiskvStore(path)
	initStore(t, store)

	if err := os.WriteFile(filepath.Join(path, constants.CollectionTasks), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	tasks, err := store.GetTasks()
	if err != nil {
		t.Fatalf("GetTasks should not fail on malformed data: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty tasks, got %+v", tasks)
	}
}

func initStore(t *testing.T, store Provider) {
	t.Helper()
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	t.Cleanup(func() { store.Close() })
}
