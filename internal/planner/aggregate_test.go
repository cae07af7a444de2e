package planner

import (
	"testing"

	"lifeos/internal/models"
)

func TestAggregate(t *testing.T) {
	history := models.History{
		"2026-01-05": {Score: 1},
		"2026-01-06": {Score: 2},
		"2026-02-10": {Score: 40},
		"2026-02-11": {Score: 100, IsNature: true, Note: "forest"},
		"2026-04-07": {Score: 80},
		"2026-04-08": {Score: 20},
		"2026-05-01": {Score: 100, IsNature: true},
		"2026-05-02": {Score: 100, IsNature: true},
	}

	tests := []struct {
		name     string
		level    Level
		month    int
		week     int
		dayIndex int
		want     Summary
	}{
		{"month rounds half up", LevelMonth, 1, 0, 0, Summary{Score: 2, Exists: true}},
		{"mixed nature not flagged", LevelMonth, 2, 0, 0, Summary{Score: 70, Exists: true}},
		{"all nature flagged", LevelMonth, 5, 0, 0, Summary{Score: 100, IsNature: true, Exists: true}},
		{"week bounds day of month", LevelWeek, 4, 1, 0, Summary{Score: 80, Exists: true}},
		{"adjacent week", LevelWeek, 4, 2, 0, Summary{Score: 20, Exists: true}},
		{"empty month", LevelMonth, 9, 0, 0, Summary{}},
		{"empty week of full month", LevelWeek, 1, 3, 0, Summary{}},
		{"day with record", LevelDay, 1, 1, 0, Summary{Score: 1, Exists: true}},
		{"day without record", LevelDay, 1, 1, 3, Summary{}},
		{"unresolvable day", LevelDay, 2, 5, 0, Summary{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(history, tt.level, tt.month, tt.week, tt.dayIndex)
			if got != tt.want {
				t.Errorf("Aggregate(%v, %d, %d, %d) = %+v, want %+v",
					tt.level, tt.month, tt.week, tt.dayIndex, got, tt.want)
			}
		})
	}
}

func TestAggregateYear(t *testing.T) {
	history := models.History{
		"2026-01-01": {Score: 30},
		"2026-12-31": {Score: 100, IsNature: true},
	}

	got := Aggregate(history, LevelYear, 0, 0, 0)
	want := Summary{Score: 65, Exists: true}
	if got != want {
		t.Errorf("year aggregate = %+v, want %+v", got, want)
	}
}

func TestAggregateZeroScoreIsData(t *testing.T) {
	history := models.History{"2026-03-02": {Score: 0}}

	got := Aggregate(history, LevelMonth, 3, 0, 0)
	if !got.Exists || got.Score != 0 {
		t.Errorf("logged zero must be data: %+v", got)
	}
}

func TestAggregateEmptyHistory(t *testing.T) {
	if got := Aggregate(models.History{}, LevelYear, 0, 0, 0); got.Exists {
		t.Errorf("empty history must have no data, got %+v", got)
	}
}
