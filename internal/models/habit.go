package models

import "lifeos/internal/constants"

// Habit is a tracked daily practice. History holds one entry per marked date;
// dates with no entry are unmarked.
type Habit struct {
	ID      string                           `json:"id"`
	Title   string                           `json:"title"`
	History map[string]constants.HabitStatus `json:"history"`
	Color   string                           `json:"color"`
}

// GymHabitID identifies the built-in habit whose title cannot be changed.
const GymHabitID = "gym"

// DefaultHabits is the seed set used when no habits have been stored yet.
func DefaultHabits() []Habit {
	return []Habit{
		{ID: GymHabitID, Title: "Gym / Physical", History: map[string]constants.HabitStatus{}, Color: "rose"},
		{ID: "h2", Title: "Skill Mastery", History: map[string]constants.HabitStatus{}, Color: "cyan"},
		{ID: "h3", Title: "Project X", History: map[string]constants.HabitStatus{}, Color: "violet"},
	}
}

// Cycle advances the habit's state for date: empty -> done -> missed -> empty.
func (h *Habit) Cycle(date string) {
	if h.History == nil {
		h.History = map[string]constants.HabitStatus{}
	}
	switch h.History[date] {
	case constants.HabitDone:
		h.History[date] = constants.HabitMissed
	case constants.HabitMissed:
		delete(h.History, date)
	default:
		h.History[date] = constants.HabitDone
	}
}

// Set records an explicit status for date; an empty status clears the entry.
func (h *Habit) Set(date string, status constants.HabitStatus) {
	if h.History == nil {
		h.History = map[string]constants.HabitStatus{}
	}
	if status == "" {
		delete(h.History, date)
		return
	}
	h.History[date] = status
}

// Renamable reports whether the habit's title may be edited.
func (h Habit) Renamable() bool {
	return h.ID != GymHabitID
}
