package achievements

import (
	"fmt"

	"lifeos/internal/cli"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	achievements, err := ctx.Store.GetAchievements()
	if err != nil {
		return err
	}
	if len(achievements) == 0 {
		fmt.Println("No victories logged yet.")
		return nil
	}

	for _, a := range achievements {
		fmt.Printf("%s  %s  (%s)\n", a.Date, a.Title, a.ID)
		fmt.Printf("    %s\n", a.Story)
	}
	return nil
}
