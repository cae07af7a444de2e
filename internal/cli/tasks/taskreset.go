package tasks

import (
	"fmt"

	"lifeos/internal/cli"
)

type TaskResetCmd struct{}

// Run unchecks every task so the protocol starts the next day clean. Logged
// history is untouched.
func (c *TaskResetCmd) Run(ctx *cli.Context) error {
	tasks, err := ctx.Store.GetTasks()
	if err != nil {
		return err
	}

	for i := range tasks {
		tasks[i].Completed = false
	}
	if err := ctx.Store.SaveTasks(tasks); err != nil {
		return err
	}

	fmt.Printf("Reset %d tasks\n", len(tasks))
	return nil
}
