package accounts

import (
	"fmt"

	"github.com/example/frontdesk/internal/cli"
)

type AccountDeleteCmd struct {
	ID    string `arg:"" help:"Account ID."`
	Force bool   `help:"Skip confirmation." short:"f"`
}

func (c *AccountDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.RequireAdmin(); err != nil {
		return err
	}
	if id := ctx.Session.Current(); id != nil && id.AccountID == c.ID {
		return fmt.Errorf("refusing to delete the signed-in account")
	}
	if !c.Force {
		fmt.Printf("Delete account %s? [y/N] ", c.ID)
		var answer string
		_, _ = fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted")
			return nil
		}
	}

	cctx, cancel := ctx.CommandContext()
	defer cancel()

	if err := ctx.Client.Accounts.Delete(cctx, c.ID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	fmt.Println("Account deleted")
	return nil
}
