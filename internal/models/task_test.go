package models

import "testing"

func TestTaskValid(t *testing.T) {
	tests := []struct {
		name string
		task Task
		want bool
	}{
		{"valid", Task{Title: "Deep work", Weight: 40}, true},
		{"blank title", Task{Title: "   ", Weight: 40}, false},
		{"zero weight", Task{Title: "Deep work", Weight: 0}, false},
		{"negative weight", Task{Title: "Deep work", Weight: -5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTotalScoreAndCapacity(t *testing.T) {
	tasks := []Task{
		{Title: "Deep work", Weight: 40, Completed: true},
		{Title: "Exercise", Weight: 20, Completed: false},
		{Title: "Reading", Weight: 15, Completed: true},
	}

	if got := TotalScore(tasks); got != 55 {
		t.Errorf("TotalScore() = %d, want 55", got)
	}
	if got := Capacity(tasks); got != 75 {
		t.Errorf("Capacity() = %d, want 75", got)
	}
	if got := TotalScore(nil); got != 0 {
		t.Errorf("TotalScore(nil) = %d, want 0", got)
	}
}
