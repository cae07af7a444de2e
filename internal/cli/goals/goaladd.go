package goals

import (
	"fmt"
	"strings"

	"lifeos/internal/cli"
)

type GoalAddCmd struct {
	Text string `arg:"" help:"Goal text."`
	PeriodFlags
}

func (c *GoalAddCmd) Validate() error {
	if strings.TrimSpace(c.Text) == "" {
		return fmt.Errorf("goal text cannot be blank")
	}
	return c.PeriodFlags.Validate()
}

func (c *GoalAddCmd) Run(ctx *cli.Context) error {
	key, err := c.Key()
	if err != nil {
		return err
	}

	goals, err := ctx.Store.GetGoals()
	if err != nil {
		return err
	}
	goals.Add(key, c.Text)
	if err := ctx.Store.SaveGoals(goals); err != nil {
		return err
	}

	fmt.Printf("Added goal to %s\n", key)
	return nil
}
