package days

import (
	"fmt"

	"lifeos/internal/cli"
	"lifeos/internal/utils"
)

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD). Defaults to today."`
}

func (c *DayCmd) Validate() error {
	if c.Date != "" && !utils.ValidateDateFormat(c.Date) {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", c.Date)
	}
	return nil
}

func (c *DayCmd) Run(ctx *cli.Context) error {
	date := c.Date
	if date == "" {
		date = utils.Today()
	}

	history, err := ctx.Store.GetHistory()
	if err != nil {
		return err
	}

	rec, ok := history[date]
	if !ok {
		fmt.Printf("No entry for %s\n", date)
		return nil
	}

	if rec.IsNature {
		fmt.Printf("%s: nature day\n", date)
	} else {
		fmt.Printf("%s: score %d\n", date, rec.Score)
	}
	if rec.Note != "" {
		fmt.Printf("  note: %s\n", rec.Note)
	}
	return nil
}
