package tasks

import (
	"fmt"

	"lifeos/internal/cli"
)

type TaskDeleteCmd struct {
	ID string `arg:"" help:"Task id (or unique prefix)."`
}

func (c *TaskDeleteCmd) Run(ctx *cli.Context) error {
	tasks, err := ctx.Store.GetTasks()
	if err != nil {
		return err
	}

	i, err := findTask(tasks, c.ID)
	if err != nil {
		return err
	}
	title := tasks[i].Title
	tasks = append(tasks[:i], tasks[i+1:]...)
	if err := ctx.Store.SaveTasks(tasks); err != nil {
		return err
	}

	fmt.Printf("Deleted task: %s\n", title)
	return nil
}
