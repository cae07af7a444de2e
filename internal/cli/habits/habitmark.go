package habits

import (
	"fmt"

	"lifeos/internal/cli"
	"lifeos/internal/constants"
	"lifeos/internal/utils"
)

type HabitMarkCmd struct {
	ID   string `arg:"" help:"Habit id (or unique prefix)."`
	Date string `short:"d" help:"Date (YYYY-MM-DD). Defaults to today."`
}

func (c *HabitMarkCmd) Validate() error {
	return validateDate(c.Date)
}

func (c *HabitMarkCmd) Run(ctx *cli.Context) error {
	return setStatus(ctx, c.ID, c.Date, constants.HabitDone)
}

type HabitMissCmd struct {
	ID   string `arg:"" help:"Habit id (or unique prefix)."`
	Date string `short:"d" help:"Date (YYYY-MM-DD). Defaults to today."`
}

func (c *HabitMissCmd) Validate() error {
	return validateDate(c.Date)
}

func (c *HabitMissCmd) Run(ctx *cli.Context) error {
	return setStatus(ctx, c.ID, c.Date, constants.HabitMissed)
}

type HabitClearCmd struct {
	ID   string `arg:"" help:"Habit id (or unique prefix)."`
	Date string `short:"d" help:"Date (YYYY-MM-DD). Defaults to today."`
}

func (c *HabitClearCmd) Validate() error {
	return validateDate(c.Date)
}

func (c *HabitClearCmd) Run(ctx *cli.Context) error {
	return setStatus(ctx, c.ID, c.Date, "")
}

func validateDate(date string) error {
	if date != "" && !utils.ValidateDateFormat(date) {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	return nil
}

func setStatus(ctx *cli.Context, id, date string, status constants.HabitStatus) error {
	if date == "" {
		date = utils.Today()
	}

	habits, err := ctx.Store.GetHabits()
	if err != nil {
		return err
	}
	i, err := findHabit(habits, id)
	if err != nil {
		return err
	}
	habits[i].Set(date, status)
	if err := ctx.Store.SaveHabits(habits); err != nil {
		return err
	}

	switch status {
	case constants.HabitDone:
		fmt.Printf("Marked %s done on %s\n", habits[i].Title, date)
	case constants.HabitMissed:
		fmt.Printf("Marked %s missed on %s\n", habits[i].Title, date)
	default:
		fmt.Printf("Cleared %s on %s\n", habits[i].Title, date)
	}
	return nil
}
