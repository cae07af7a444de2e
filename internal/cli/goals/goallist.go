package goals

import (
	"fmt"

	"lifeos/internal/cli"
)

type GoalListCmd struct {
	PeriodFlags
}

func (c *GoalListCmd) Validate() error {
	return c.PeriodFlags.Validate()
}

func (c *GoalListCmd) Run(ctx *cli.Context) error {
	key, err := c.Key()
	if err != nil {
		return err
	}

	goals, err := ctx.Store.GetGoals()
	if err != nil {
		return err
	}

	list := goals[key]
	if len(list) == 0 {
		fmt.Printf("No goals for %s\n", key)
		return nil
	}

	fmt.Printf("Goals for %s:\n", key)
	for _, g := range list {
		mark := " "
		if g.Completed {
			mark = "x"
		}
		fmt.Printf("[%s] %-40s %s\n", mark, g.Text, g.ID)
	}
	return nil
}
