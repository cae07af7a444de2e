package planner

import "lifeos/internal/models"

// AchievementsFor returns the achievements dated inside the period at the
// given coordinate, preserving their stored order.
func AchievementsFor(list []models.Achievement, level Level, month, week, dayIndex int) []models.Achievement {
	match := matcher(level, month, week, dayIndex)
	if match == nil {
		return nil
	}

	var out []models.Achievement
	for _, a := range list {
		if match(a.Date) {
			out = append(out, a)
		}
	}
	return out
}
