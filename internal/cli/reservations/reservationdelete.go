package reservations

import (
	"fmt"

	"github.com/example/frontdesk/internal/cli"
)

type ReservationDeleteCmd struct {
	ID    string `arg:"" help:"Reservation ID."`
	Force bool   `help:"Skip confirmation." short:"f"`
}

func (c *ReservationDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.RequireAuth(); err != nil {
		return err
	}
	if !c.Force {
		fmt.Printf("Delete reservation %s? [y/N] ", c.ID)
		var answer string
		_, _ = fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted")
			return nil
		}
	}

	cctx, cancel := ctx.CommandContext()
	defer cancel()

	if err := ctx.Client.Reservations.Delete(cctx, c.ID); err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}
	fmt.Println("Reservation deleted")
	return nil
}
