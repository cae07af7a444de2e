package goals

import (
	"fmt"

	"lifeos/internal/cli"
	"lifeos/internal/models"
)

type GoalToggleCmd struct {
	ID string `arg:"" help:"Goal id (or unique prefix)."`
	PeriodFlags
}

func (c *GoalToggleCmd) Validate() error {
	return c.PeriodFlags.Validate()
}

func (c *GoalToggleCmd) Run(ctx *cli.Context) error {
	key, err := c.Key()
	if err != nil {
		return err
	}

	goals, err := ctx.Store.GetGoals()
	if err != nil {
		return err
	}

	i, err := findGoal(goals[key], c.ID)
	if err != nil {
		return err
	}
	goals.Toggle(key, goals[key][i].ID)
	if err := ctx.Store.SaveGoals(goals); err != nil {
		return err
	}

	g := goals[key][i]
	state := "open"
	if g.Completed {
		state = "completed"
	}
	fmt.Printf("Goal %q is now %s\n", g.Text, state)
	return nil
}

func findGoal(list []models.Goal, id string) (int, error) {
	ids := make([]string, len(list))
	for i, g := range list {
		ids[i] = g.ID
	}
	i, err := cli.MatchID(ids, id)
	if err != nil {
		return -1, fmt.Errorf("goal %w", err)
	}
	return i, nil
}
