package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lifeos/internal/storage"
)

func TestRunNormalizesLegacyHistory(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewDiskvStore(dir)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	// A web-era history blob: bare integer scores instead of records.
	legacy := []byte(`{"2026-01-05": 75, "2026-01-06": 40}`)
	if err := os.WriteFile(filepath.Join(dir, "history"), legacy, 0600); err != nil {
		t.Fatalf("failed to write legacy blob: %v", err)
	}

	if err := Run(store); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "history"))
	if err != nil {
		t.Fatalf("failed to read migrated blob: %v", err)
	}
	got := string(raw)
	if !strings.Contains(got, `"score": 75`) {
		t.Errorf("migrated history missing normalized score, got:\n%s", got)
	}
	if strings.Contains(got, `"2026-01-05": 75`) {
		t.Errorf("migrated history still holds a bare integer score:\n%s", got)
	}

	history, err := store.GetHistory()
	if err != nil {
		t.Fatalf("GetHistory() error = %v", err)
	}
	if history["2026-01-06"].Score != 40 {
		t.Errorf("history[2026-01-06].Score = %d, want 40", history["2026-01-06"].Score)
	}
}

func TestRunSeedsDefaultHabits(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewDiskvStore(dir)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if err := Run(store); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "habits")); err != nil {
		t.Fatalf("expected habits collection on disk after migration: %v", err)
	}

	habits, err := store.GetHabits()
	if err != nil {
		t.Fatalf("GetHabits() error = %v", err)
	}
	if len(habits) != 3 {
		t.Errorf("len(habits) = %d, want 3", len(habits))
	}
}
