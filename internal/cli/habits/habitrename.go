package habits

import (
	"fmt"
	"strings"

	"lifeos/internal/cli"
)

type HabitRenameCmd struct {
	ID    string `arg:"" help:"Habit id (or unique prefix)."`
	Title string `arg:"" help:"New title."`
}

func (c *HabitRenameCmd) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("title cannot be blank")
	}
	return nil
}

func (c *HabitRenameCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.GetHabits()
	if err != nil {
		return err
	}
	i, err := findHabit(habits, c.ID)
	if err != nil {
		return err
	}
	if !habits[i].Renamable() {
		return fmt.Errorf("the %s habit cannot be renamed", habits[i].Title)
	}

	old := habits[i].Title
	habits[i].Title = strings.TrimSpace(c.Title)
	if err := ctx.Store.SaveHabits(habits); err != nil {
		return err
	}

	fmt.Printf("Renamed %s to %s\n", old, habits[i].Title)
	return nil
}
