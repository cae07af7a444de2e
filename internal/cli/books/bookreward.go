package books

import (
	"context"
	"fmt"

	"lifeos/internal/cli"
	"lifeos/internal/constants"
)

type BookRewardCmd struct {
	ID string `arg:"" help:"Book id (or unique prefix)."`
}

// Run claims the movie reward for a finished book. The recommendation is
// fetched once and kept on the book; later claims replay it.
func (c *BookRewardCmd) Run(ctx *cli.Context) error {
	books, err := ctx.Store.GetBooks()
	if err != nil {
		return err
	}
	i, err := findBook(books, c.ID)
	if err != nil {
		return err
	}

	b := &books[i]
	if !b.RewardEligible() {
		return fmt.Errorf("%s is at %d%%, the reward unlocks at %d%%",
			b.Title, b.Percent(), constants.RewardUnlockPercent)
	}

	if b.RewardRecommendation == "" {
		b.RewardRecommendation = ctx.Recommender.MovieFor(context.Background(), b.Title, b.Author)
		b.RewardUnlocked = true
		if err := ctx.Store.SaveBooks(books); err != nil {
			return err
		}
	}

	fmt.Printf("Movie night for finishing %s:\n\n%s\n", b.Title, b.RewardRecommendation)
	return nil
}
