package models

import (
	"testing"

	"lifeos/internal/constants"
)

func TestHabitCycle(t *testing.T) {
	h := Habit{ID: "h2", Title: "Skill Mastery"}
	date := "2026-02-10"

	h.Cycle(date)
	if h.History[date] != constants.HabitDone {
		t.Errorf("after first cycle: %q, want done", h.History[date])
	}
	h.Cycle(date)
	if h.History[date] != constants.HabitMissed {
		t.Errorf("after second cycle: %q, want missed", h.History[date])
	}
	h.Cycle(date)
	if _, ok := h.History[date]; ok {
		t.Error("third cycle should clear the entry")
	}
}

func TestHabitSet(t *testing.T) {
	h := Habit{ID: "h3"}
	h.Set("2026-05-01", constants.HabitMissed)
	if h.History["2026-05-01"] != constants.HabitMissed {
		t.Error("Set should record the status")
	}
	h.Set("2026-05-01", "")
	if _, ok := h.History["2026-05-01"]; ok {
		t.Error("Set with empty status should clear the entry")
	}
}

func TestDefaultHabits(t *testing.T) {
	habits := DefaultHabits()
	if len(habits) != 3 {
		t.Fatalf("expected 3 default habits, got %d", len(habits))
	}
	if habits[0].ID != GymHabitID || habits[0].Renamable() {
		t.Error("gym habit must exist and must not be renamable")
	}
	for _, h := range habits[1:] {
		if !h.Renamable() {
			t.Errorf("habit %s should be renamable", h.ID)
		}
	}
}
