package tasks

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"lifeos/internal/cli"
	"lifeos/internal/models"
)

type TaskAddCmd struct {
	Title  string `arg:"" help:"Task title."`
	Weight int    `short:"w" help:"Weight of the task as a percent of the day." required:""`
}

func (c *TaskAddCmd) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("title cannot be blank")
	}
	if c.Weight <= 0 {
		return fmt.Errorf("weight must be greater than zero")
	}
	return nil
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	tasks, err := ctx.Store.GetTasks()
	if err != nil {
		return err
	}

	task := models.Task{
		ID:     uuid.New().String(),
		Title:  strings.TrimSpace(c.Title),
		Weight: c.Weight,
	}
	tasks = append(tasks, task)
	if err := ctx.Store.SaveTasks(tasks); err != nil {
		return err
	}

	fmt.Printf("Added task: %s (ID: %s)\n", task.Title, task.ID)
	return nil
}
