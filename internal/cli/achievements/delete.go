package achievements

import (
	"fmt"

	"lifeos/internal/cli"
)

type DeleteCmd struct {
	ID string `arg:"" help:"Achievement id (or unique prefix)."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	achievements, err := ctx.Store.GetAchievements()
	if err != nil {
		return err
	}

	ids := make([]string, len(achievements))
	for i, a := range achievements {
		ids[i] = a.ID
	}
	i, err := cli.MatchID(ids, c.ID)
	if err != nil {
		return fmt.Errorf("achievement %w", err)
	}

	title := achievements[i].Title
	achievements = append(achievements[:i], achievements[i+1:]...)
	if err := ctx.Store.SaveAchievements(achievements); err != nil {
		return err
	}

	fmt.Printf("Deleted achievement: %s\n", title)
	return nil
}
