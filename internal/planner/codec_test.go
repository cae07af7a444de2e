package planner

import "testing"

func TestResolveDate(t *testing.T) {
	tests := []struct {
		name     string
		month    int
		week     int
		dayIndex int
		want     string
		ok       bool
	}{
		// 2026 opens on a Thursday.
		{"first day of year", 1, 1, 3, "2026-01-01", true},
		{"first monday of january", 1, 1, 0, "2026-01-05", true},
		{"mid-month sunday", 3, 3, 6, "2026-03-15", true},
		{"june starts on monday", 6, 1, 0, "2026-06-01", true},
		// April week 5 holds only the 29th (Wed) and 30th (Thu).
		{"april week 5 wednesday", 4, 5, 2, "2026-04-29", true},
		{"april week 5 thursday", 4, 5, 3, "2026-04-30", true},
		{"april week 5 monday missing", 4, 5, 0, "", false},
		{"april week 5 friday missing", 4, 5, 4, "", false},
		// February has 28 days in 2026, so week 5 is empty.
		{"february week 5", 2, 5, 0, "", false},
		{"june week 5 tuesday", 6, 5, 1, "2026-06-30", true},
		{"month out of range", 13, 1, 0, "", false},
		{"week out of range", 1, 6, 0, "", false},
		{"day index out of range", 1, 1, 7, "", false},
		{"negative day index", 1, 1, -1, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveDate(tt.month, tt.week, tt.dayIndex)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ResolveDate(%d, %d, %d) = (%q, %v), want (%q, %v)",
					tt.month, tt.week, tt.dayIndex, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestResolveDateRoundTrip(t *testing.T) {
	// Every resolvable slot must map to a distinct date, and together they
	// must cover the whole month exactly once.
	for month := 1; month <= 12; month++ {
		seen := map[string]bool{}
		for week := 1; week <= 5; week++ {
			for day := 0; day <= 6; day++ {
				date, ok := ResolveDate(month, week, day)
				if !ok {
					continue
				}
				if seen[date] {
					t.Fatalf("month %d: %s resolved twice", month, date)
				}
				seen[date] = true
			}
		}
		if len(seen) != DaysInMonth(month) {
			t.Errorf("month %d: resolved %d dates, want %d", month, len(seen), DaysInMonth(month))
		}
	}
}

func TestPeriodKey(t *testing.T) {
	tests := []struct {
		name     string
		level    Level
		month    int
		week     int
		dayIndex int
		want     string
	}{
		{"year", LevelYear, 0, 0, 0, "2026"},
		{"month", LevelMonth, 3, 0, 0, "2026-03"},
		{"single digit month padded", LevelMonth, 9, 0, 0, "2026-09"},
		{"week", LevelWeek, 3, 2, 0, "2026-03-W2"},
		{"day is one-based", LevelDay, 3, 2, 2, "2026-03-W2-D3"},
		{"sunday slot", LevelDay, 12, 1, 6, "2026-12-W1-D7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PeriodKey(tt.level, tt.month, tt.week, tt.dayIndex); got != tt.want {
				t.Errorf("PeriodKey(%v, %d, %d, %d) = %q, want %q",
					tt.level, tt.month, tt.week, tt.dayIndex, got, tt.want)
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := DaysInMonth(2); got != 28 {
		t.Errorf("february 2026 = %d days, want 28", got)
	}
	if got := DaysInMonth(12); got != 31 {
		t.Errorf("december 2026 = %d days, want 31", got)
	}
}
