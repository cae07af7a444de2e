package planner

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"lifeos/internal/constants"
	"lifeos/internal/models"
)

// Summary is the aggregated outcome for a period. Exists distinguishes a
// logged score of zero from a period with no data at all.
type Summary struct {
	Score    int
	IsNature bool
	Exists   bool
}

// matcher returns a predicate selecting the ISO dates that fall inside the
// period, or nil when the coordinate resolves to no date. Prefix matching is
// only valid because stored dates are fixed-width zero-padded.
func matcher(level Level, month, week, dayIndex int) func(string) bool {
	if level == LevelDay {
		target, ok := ResolveDate(month, week, dayIndex)
		if !ok {
			return nil
		}
		return func(date string) bool { return date == target }
	}

	prefix := fmt.Sprintf("%d-", constants.PlannerYear)
	if level >= LevelMonth {
		prefix = fmt.Sprintf("%d-%02d-", constants.PlannerYear, month)
	}
	if level < LevelWeek {
		return func(date string) bool {
			return len(date) == 10 && strings.HasPrefix(date, prefix)
		}
	}

	startDay := (week-1)*7 + 1
	endDay := startDay + 6
	if last := DaysInMonth(month); endDay > last {
		endDay = last
	}
	return func(date string) bool {
		if len(date) != 10 || !strings.HasPrefix(date, prefix) {
			return false
		}
		dom, err := strconv.Atoi(date[8:])
		return err == nil && dom >= startDay && dom <= endDay
	}
}

// Aggregate computes the summary for the period at the given coordinate.
// Nature days contribute a flat 100; the average rounds half-up. A period is
// flagged nature only when every logged day in it is.
func Aggregate(history models.History, level Level, month, week, dayIndex int) Summary {
	match := matcher(level, month, week, dayIndex)
	if match == nil {
		return Summary{}
	}

	var sum, count, natureCount int
	for date, rec := range history {
		if !match(date) {
			continue
		}
		count++
		if rec.IsNature {
			natureCount++
			sum += 100
		} else {
			sum += rec.Score
		}
	}
	if count == 0 {
		return Summary{}
	}
	return Summary{
		Score:    int(math.Round(float64(sum) / float64(count))),
		IsNature: natureCount == count,
		Exists:   true,
	}
}
