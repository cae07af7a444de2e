package books

import (
	"fmt"

	"lifeos/internal/cli"
)

type BookProgressCmd struct {
	ID   string `arg:"" help:"Book id (or unique prefix)."`
	Page int    `arg:"" help:"Current page."`
}

func (c *BookProgressCmd) Run(ctx *cli.Context) error {
	books, err := ctx.Store.GetBooks()
	if err != nil {
		return err
	}
	i, err := findBook(books, c.ID)
	if err != nil {
		return err
	}

	books[i].SetProgress(c.Page)
	if err := ctx.Store.SaveBooks(books); err != nil {
		return err
	}

	b := books[i]
	fmt.Printf("%s: page %d of %d (%d%%)\n", b.Title, b.CurrentPage, b.TotalPages, b.Percent())
	if b.RewardEligible() && !b.RewardUnlocked {
		fmt.Printf("Reward unlocked. Claim it with 'lifeos book reward %s'\n", b.ID[:8])
	}
	return nil
}
