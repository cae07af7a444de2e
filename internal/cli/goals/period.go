package goals

import (
	"fmt"

	"lifeos/internal/planner"
)

// PeriodFlags locate a planner period. Month alone selects a month, month
// plus week a week, and all three a single day. Without flags the whole year
// is addressed.
type PeriodFlags struct {
	Month int `short:"m" help:"Month (1-12)."`
	Week  int `short:"w" help:"Week of the month (1-5)."`
	Day   int `short:"d" help:"Day slot (1-7, Monday first)."`
}

func (p PeriodFlags) Validate() error {
	if p.Month != 0 && (p.Month < 1 || p.Month > 12) {
		return fmt.Errorf("month must be between 1 and 12")
	}
	if p.Week != 0 && (p.Week < 1 || p.Week > 5) {
		return fmt.Errorf("week must be between 1 and 5")
	}
	if p.Day != 0 && (p.Day < 1 || p.Day > 7) {
		return fmt.Errorf("day must be between 1 and 7")
	}
	if p.Week != 0 && p.Month == 0 {
		return fmt.Errorf("--week requires --month")
	}
	if p.Day != 0 && p.Week == 0 {
		return fmt.Errorf("--day requires --week")
	}
	return nil
}

// Key builds the goal-store key for the addressed period. Day slots that do
// not exist in the calendar are rejected.
func (p PeriodFlags) Key() (string, error) {
	level := planner.LevelYear
	switch {
	case p.Day != 0:
		level = planner.LevelDay
	case p.Week != 0:
		level = planner.LevelWeek
	case p.Month != 0:
		level = planner.LevelMonth
	}

	if level == planner.LevelDay {
		if _, ok := planner.ResolveDate(p.Month, p.Week, p.Day-1); !ok {
			return "", fmt.Errorf("no day %d in week %d of month %d", p.Day, p.Week, p.Month)
		}
	}
	if level == planner.LevelWeek {
		if (p.Week-1)*7+1 > planner.DaysInMonth(p.Month) {
			return "", fmt.Errorf("no week %d in month %d", p.Week, p.Month)
		}
	}
	return planner.PeriodKey(level, p.Month, p.Week, p.Day-1), nil
}
