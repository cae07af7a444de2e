package system

import (
	"fmt"

	"lifeos/internal/cli"
	"lifeos/internal/migration"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	if err := migration.Run(ctx.Store); err != nil {
		return err
	}
	fmt.Println("Storage rewritten in the current format")
	return nil
}
