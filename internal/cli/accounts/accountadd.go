package accounts

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/example/frontdesk/internal/cli"
	"github.com/example/frontdesk/internal/models"
)

type AccountAddCmd struct {
	Name      string `arg:"" optional:"" help:"Last name."`
	FirstName string `help:"First name." name:"first-name"`
	Phone     string `help:"Phone number."`
	Password  string `help:"Password. Prompted for when omitted." short:"p"`
}

func (c *AccountAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.RequireAdmin(); err != nil {
		return err
	}

	account := models.CreateAccount{
		Name:        c.Name,
		FirstName:   c.FirstName,
		PhoneNumber: c.Phone,
		Password:    c.Password,
	}
	if account.Name == "" || account.Password == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Last name").Value(&account.Name),
			huh.NewInput().Title("First name").Value(&account.FirstName),
			huh.NewInput().Title("Phone").Value(&account.PhoneNumber),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&account.Password),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	cctx, cancel := ctx.CommandContext()
	defer cancel()

	created, err := ctx.Client.Accounts.Create(cctx, account)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	fmt.Printf("Created account %s %s (%s)\n", created.FirstName, created.Name, created.ID)
	return nil
}
