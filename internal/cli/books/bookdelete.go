package books

import (
	"fmt"

	"lifeos/internal/cli"
)

type BookDeleteCmd struct {
	ID string `arg:"" help:"Book id (or unique prefix)."`
}

func (c *BookDeleteCmd) Run(ctx *cli.Context) error {
	books, err := ctx.Store.GetBooks()
	if err != nil {
		return err
	}
	i, err := findBook(books, c.ID)
	if err != nil {
		return err
	}

	title := books[i].Title
	books = append(books[:i], books[i+1:]...)
	if err := ctx.Store.SaveBooks(books); err != nil {
		return err
	}

	fmt.Printf("Deleted book: %s\n", title)
	return nil
}
