package achievements

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"lifeos/internal/cli"
	"lifeos/internal/models"
	"lifeos/internal/utils"
)

type AddCmd struct {
	Title string `arg:"" help:"What was achieved."`
	Story string `short:"s" help:"The story behind it." required:""`
	Date  string `short:"d" help:"Date (YYYY-MM-DD). Defaults to today."`
}

func (c *AddCmd) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("title cannot be blank")
	}
	if strings.TrimSpace(c.Story) == "" {
		return fmt.Errorf("story cannot be blank")
	}
	if c.Date != "" && !utils.ValidateDateFormat(c.Date) {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", c.Date)
	}
	return nil
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	date := c.Date
	if date == "" {
		date = utils.Today()
	}

	achievements, err := ctx.Store.GetAchievements()
	if err != nil {
		return err
	}

	a := models.Achievement{
		ID:    uuid.New().String(),
		Date:  date,
		Title: strings.TrimSpace(c.Title),
		Story: strings.TrimSpace(c.Story),
	}
	// Newest first.
	achievements = append([]models.Achievement{a}, achievements...)
	if err := ctx.Store.SaveAchievements(achievements); err != nil {
		return err
	}

	fmt.Printf("Recorded victory: %s (%s)\n", a.Title, a.Date)
	return nil
}
