package days

import (
	"fmt"
	"strings"

	"lifeos/internal/cli"
	"lifeos/internal/models"
	"lifeos/internal/utils"
)

type LogCmd struct {
	Date   string `short:"d" help:"Date to log (YYYY-MM-DD). Defaults to today."`
	Nature bool   `help:"Log as a nature day (counts as a full score)."`
	Note   string `short:"n" help:"Reflection note. Required for nature days."`
}

func (c *LogCmd) Validate() error {
	if c.Date != "" && !utils.ValidateDateFormat(c.Date) {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", c.Date)
	}
	if c.Nature && strings.TrimSpace(c.Note) == "" {
		return fmt.Errorf("a nature day needs a note")
	}
	return nil
}

// Run writes the protocol's current score into the history under the chosen
// date, overwriting any previous record for that date.
func (c *LogCmd) Run(ctx *cli.Context) error {
	date := c.Date
	if date == "" {
		date = utils.Today()
	}

	tasks, err := ctx.Store.GetTasks()
	if err != nil {
		return err
	}
	history, err := ctx.Store.GetHistory()
	if err != nil {
		return err
	}

	rec := models.DayRecord{
		Score:    models.TotalScore(tasks),
		IsNature: c.Nature,
		Note:     strings.TrimSpace(c.Note),
	}
	history[date] = rec
	if err := ctx.Store.SaveHistory(history); err != nil {
		return err
	}

	if rec.IsNature {
		fmt.Printf("Logged %s as a nature day\n", date)
	} else {
		fmt.Printf("Logged %s with score %d\n", date, rec.Score)
	}
	return nil
}
