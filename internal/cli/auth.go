package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/example/frontdesk/internal/models"
	"github.com/example/frontdesk/internal/session"
)

type LoginCmd struct {
	Name     string `arg:"" optional:"" help:"Account name. Prompted for when omitted."`
	Password string `help:"Account password. Prompted for when omitted." short:"p"`
}

func (c *LoginCmd) Run(ctx *Context) error {
	name := c.Name
	password := c.Password
	if name == "" || password == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Name").Value(&name),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	cctx, cancel := ctx.CommandContext()
	defer cancel()

	resp, err := ctx.Client.Accounts.Login(cctx, models.Login{Name: name, Password: password})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	id := session.FromLogin(resp)
	if err := ctx.Session.Establish(id); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	fmt.Printf("Signed in as %s (%s)\n", id.DisplayName(), id.Role)
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	if ctx.Session.Current() == nil {
		fmt.Println("Not signed in")
		return nil
	}
	if err := ctx.Session.Clear(); err != nil {
		return err
	}
	fmt.Println("Signed out")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *Context) error {
	id := ctx.Session.Current()
	if id == nil {
		fmt.Println("Not signed in")
		return nil
	}
	fmt.Printf("%s\n", id.DisplayName())
	fmt.Printf("  Role:  %s\n", id.Role)
	fmt.Printf("  Phone: %s\n", id.PhoneNumber)
	return nil
}
