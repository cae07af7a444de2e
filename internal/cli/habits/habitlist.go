package habits

import (
	"fmt"

	"lifeos/internal/cli"
	"lifeos/internal/constants"
	"lifeos/internal/models"
)

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.GetHabits()
	if err != nil {
		return err
	}

	for _, h := range habits {
		var done, missed int
		for _, status := range h.History {
			switch status {
			case constants.HabitDone:
				done++
			case constants.HabitMissed:
				missed++
			}
		}
		fmt.Printf("%-20s done %3d  missed %3d  (%s)\n", h.Title, done, missed, h.ID)
	}
	return nil
}

func findHabit(habits []models.Habit, id string) (int, error) {
	ids := make([]string, len(habits))
	for i, h := range habits {
		ids[i] = h.ID
	}
	i, err := cli.MatchID(ids, id)
	if err != nil {
		return -1, fmt.Errorf("habit %w", err)
	}
	return i, nil
}
