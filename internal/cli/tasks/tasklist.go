package tasks

import (
	"fmt"

	"lifeos/internal/cli"
	"lifeos/internal/models"
)

type TaskListCmd struct{}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	tasks, err := ctx.Store.GetTasks()
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Println("No tasks in the protocol. Add one with 'lifeos task add'.")
		return nil
	}

	for _, t := range tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Printf("[%s] %-32s %3d%%  %s\n", mark, t.Title, t.Weight, t.ID)
	}
	fmt.Printf("\nScore: %d / %d\n", models.TotalScore(tasks), models.Capacity(tasks))
	return nil
}
