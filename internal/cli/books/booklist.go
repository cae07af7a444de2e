package books

import (
	"fmt"

	"lifeos/internal/cli"
	"lifeos/internal/models"
)

type BookListCmd struct{}

func (c *BookListCmd) Run(ctx *cli.Context) error {
	books, err := ctx.Store.GetBooks()
	if err != nil {
		return err
	}
	if len(books) == 0 {
		fmt.Println("No books in the library.")
		return nil
	}

	for _, b := range books {
		reward := ""
		switch {
		case b.RewardUnlocked:
			reward = "reward claimed"
		case b.RewardEligible():
			reward = "reward ready"
		}
		fmt.Printf("%-32s %s  %d/%d (%d%%)  %s  %s\n",
			b.Title, b.Author, b.CurrentPage, b.TotalPages, b.Percent(), reward, b.ID)
	}
	return nil
}

func findBook(books []models.Book, id string) (int, error) {
	ids := make([]string, len(books))
	for i, b := range books {
		ids[i] = b.ID
	}
	i, err := cli.MatchID(ids, id)
	if err != nil {
		return -1, fmt.Errorf("book %w", err)
	}
	return i, nil
}
