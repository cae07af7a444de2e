package goals

import (
	"fmt"

	"lifeos/internal/cli"
)

type GoalRemoveCmd struct {
	ID string `arg:"" help:"Goal id (or unique prefix)."`
	PeriodFlags
}

func (c *GoalRemoveCmd) Validate() error {
	return c.PeriodFlags.Validate()
}

func (c *GoalRemoveCmd) Run(ctx *cli.Context) error {
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
	text := goals[key][i].Text
	goals.Remove(key, goals[key][i].ID)
	if err := ctx.Store.SaveGoals(goals); err != nil {
		return err
	}

	fmt.Printf("Removed goal: %s\n", text)
	return nil
}
