package books

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"lifeos/internal/cli"
	"lifeos/internal/models"
)

type BookAddCmd struct {
	Title  string `arg:"" help:"Book title."`
	Author string `short:"a" help:"Author." default:"Unknown"`
	Pages  int    `short:"p" help:"Total page count." required:""`
}

func (c *BookAddCmd) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("title cannot be blank")
	}
	if c.Pages <= 0 {
		return fmt.Errorf("pages must be greater than zero")
	}
	return nil
}

func (c *BookAddCmd) Run(ctx *cli.Context) error {
	books, err := ctx.Store.GetBooks()
	if err != nil {
		return err
	}

	book := models.Book{
		ID:         uuid.New().String(),
		Title:      strings.TrimSpace(c.Title),
		Author:     strings.TrimSpace(c.Author),
		TotalPages: c.Pages,
	}
	books = append(books, book)
	if err := ctx.Store.SaveBooks(books); err != nil {
		return err
	}

	fmt.Printf("Added book: %s by %s (ID: %s)\n", book.Title, book.Author, book.ID)
	return nil
}
