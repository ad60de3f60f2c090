package accounts

import (
	"fmt"

	"github.com/example/frontdesk/internal/cli"
)

type AccountListCmd struct{}

func (c *AccountListCmd) Run(ctx *cli.Context) error {
	if err := ctx.RequireAdmin(); err != nil {
		return err
	}

	cctx, cancel := ctx.CommandContext()
	defer cancel()

	list, err := ctx.Client.Accounts.All(cctx)
	if err != nil {
		return fmt.Errorf("failed to get accounts: %w", err)
	}
	cli.PrintAccounts(list)
	return nil
}
