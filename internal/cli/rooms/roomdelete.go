package rooms

import (
	"fmt"

	"github.com/example/frontdesk/internal/cli"
)

type RoomDeleteCmd struct {
	ID    string `arg:"" help:"Room ID."`
	Force bool   `help:"Skip confirmation." short:"f"`
}

func (c *RoomDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.RequireAuth(); err != nil {
		return err
	}
	if !c.Force {
		fmt.Printf("Delete room %s? [y/N] ", c.ID)
		var answer string
		_, _ = fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted")
			return nil
		}
	}

	cctx, cancel := ctx.CommandContext()
	defer cancel()

	if err := ctx.Client.Rooms.Delete(cctx, c.ID); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	fmt.Println("Room deleted")
	return nil
}
