package planner

import (
	"fmt"
	"time"

	"lifeos/internal/constants"
)

// Level is a depth in the year/month/week/day hierarchy.
type Level int

const (
	LevelYear Level = iota
	LevelMonth
	LevelWeek
	LevelDay
)

func (l Level) String() string {
	switch l {
	case LevelYear:
		return "year"
	case LevelMonth:
		return "month"
	case LevelWeek:
		return "week"
	case LevelDay:
		return "day"
	}
	return "unknown"
}

// DaysInMonth returns the number of days in the given month of the planner
// year.
func DaysInMonth(month int) int {
	return time.Date(constants.PlannerYear, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// mondayIndex remaps Go's Sunday-first weekday to Monday=0 ... Sunday=6, the
// order the week grid renders in.
func mondayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// ResolveDate maps a (month, week, slot) coordinate to its ISO calendar date.
// Week n covers days (n-1)*7+1 through n*7, capped at the month's last day;
// the slot is the Monday-first weekday index 0-6. ok is false when no day in
// the range falls on that weekday (short months, week-5 overflow).
func ResolveDate(month, week, dayIndex int) (string, bool) {
	if month < 1 || month > 12 || week < 1 || week > 5 || dayIndex < 0 || dayIndex > 6 {
		return "", false
	}

	last := DaysInMonth(month)
	start := (week-1)*7 + 1
	if start > last {
		return "", false
	}
	end := start + 6
	if end > last {
		end = last
	}

	for day := start; day <= end; day++ {
		d := time.Date(constants.PlannerYear, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if mondayIndex(d.Weekday()) == dayIndex {
			return d.Format(constants.DateFormat), true
		}
	}
	return "", false
}

// PeriodKey builds the stable storage key for a period. Coordinates beyond
// the level are ignored; the day segment is 1-based (Monday=1 ... Sunday=7).
func PeriodKey(level Level, month, week, dayIndex int) string {
	switch level {
	case LevelMonth:
		return fmt.Sprintf("%d-%02d", constants.PlannerYear, month)
	case LevelWeek:
		return fmt.Sprintf("%d-%02d-W%d", constants.PlannerYear, month, week)
	case LevelDay:
		return fmt.Sprintf("%d-%02d-W%d-D%d", constants.PlannerYear, month, week, dayIndex+1)
	default:
		return fmt.Sprintf("%d", constants.PlannerYear)
	}
}
