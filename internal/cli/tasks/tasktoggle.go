package tasks

import (
	"fmt"

	"lifeos/internal/cli"
	"lifeos/internal/models"
)

type TaskDoneCmd struct {
	ID string `arg:"" help:"Task id (or unique prefix)."`
}

func (c *TaskDoneCmd) Run(ctx *cli.Context) error {
	return setCompleted(ctx, c.ID, true)
}

type TaskUndoneCmd struct {
	ID string `arg:"" help:"Task id (or unique prefix)."`
}

func (c *TaskUndoneCmd) Run(ctx *cli.Context) error {
	return setCompleted(ctx, c.ID, false)
}

func setCompleted(ctx *cli.Context, id string, completed bool) error {
	tasks, err := ctx.Store.GetTasks()
	if err != nil {
		return err
	}

	i, err := findTask(tasks, id)
	if err != nil {
		return err
	}
	tasks[i].Completed = completed
	if err := ctx.Store.SaveTasks(tasks); err != nil {
		return err
	}

	state := "done"
	if !completed {
		state = "not done"
	}
	fmt.Printf("Marked %s as %s (score now %d/%d)\n",
		tasks[i].Title, state, models.TotalScore(tasks), models.Capacity(tasks))
	return nil
}

func findTask(tasks []models.Task, id string) (int, error) {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	i, err := cli.MatchID(ids, id)
	if err != nil {
		return -1, fmt.Errorf("task %w", err)
	}
	return i, nil
}
