package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/example/frontdesk/internal/api"
	"github.com/example/frontdesk/internal/cli"
	"github.com/example/frontdesk/internal/cli/accounts"
	"github.com/example/frontdesk/internal/cli/reservations"
	"github.com/example/frontdesk/internal/cli/rooms"
	"github.com/example/frontdesk/internal/cli/statistics"
	"github.com/example/frontdesk/internal/cli/system"
	"github.com/example/frontdesk/internal/config"
	"github.com/example/frontdesk/internal/constants"
	"github.com/example/frontdesk/internal/errors"
	"github.com/example/frontdesk/internal/keyring"
	"github.com/example/frontdesk/internal/logger"
	"github.com/example/frontdesk/internal/session"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"string" default:"~/.config/frontdesk/frontdesk.yaml"`
	Debug   bool   `help:"Enable debug logging."`

	Login  cli.LoginCmd        `cmd:"" help:"Sign in to the hotel API."`
	Logout cli.LogoutCmd       `cmd:"" help:"Sign out and clear the saved session."`
	Whoami cli.WhoamiCmd       `cmd:"" help:"Show the signed-in account."`
	Tui    system.TuiCmd       `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Doctor system.DoctorCmd    `cmd:"" help:"Run health checks and diagnostics."`
	Stats  statistics.StatsCmd `cmd:"" help:"Show or export the statistics dashboard."`
	Room   struct {
		List   rooms.RoomListCmd   `cmd:"" help:"List rooms." default:"1"`
		Add    rooms.RoomAddCmd    `cmd:"" help:"Add a new room."`
		Delete rooms.RoomDeleteCmd `cmd:"" help:"Delete a room."`
	} `cmd:"" help:"Manage hotel rooms."`
	Reservation struct {
		List     reservations.ReservationListCmd     `cmd:"" help:"List reservations." default:"1"`
		Calendar reservations.ReservationCalendarCmd `cmd:"" help:"Show the monthly reservation calendar."`
		Delete   reservations.ReservationDeleteCmd   `cmd:"" help:"Delete a reservation."`
	} `cmd:"" help:"Manage reservations."`
	Account struct {
		List   accounts.AccountListCmd   `cmd:"" help:"List operator accounts."`
		Add    accounts.AccountAddCmd    `cmd:"" help:"Register a new operator account."`
		Delete accounts.AccountDeleteCmd `cmd:"" help:"Delete an operator account."`
	} `cmd:"" help:"Manage operator accounts (admin)."`
}

// keyringKeeper adapts the keyring package to the session store.
type keyringKeeper struct{}

func (keyringKeeper) Get() (string, error)   { return keyring.GetToken() }
func (keyringKeeper) Set(token string) error { return keyring.SetToken(token) }
func (keyringKeeper) Delete() error          { return keyring.DeleteToken() }

func main() {
	// A .env in the working directory may carry FRONTDESK_API_URL.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Hotel front-desk operations client"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		errors.Fatalf("loading config: %v", err)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, StateDir: cfg.StateDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	opts := []session.Option{}
	if keyring.IsAvailable() {
		opts = append(opts, session.WithTokenKeeper(keyringKeeper{}))
	}
	sess := session.NewStore(cfg.SessionPath(), opts...)

	client := api.New(api.Options{
		BaseURL:         cfg.API.BaseURL,
		Timeout:         cfg.API.Timeout,
		RateLimitPerSec: cfg.API.RateLimitPerSec,
		CacheTTL:        time.Duration(cfg.API.CacheTTLSeconds) * time.Second,
	}, sess)

	// CLI commands get the session torn down on an auth denial; the TUI
	// installs its own handling on top of this.
	client.OnAuthDenied(func() {
		logger.Warn("Authorization denied, clearing session")
		_ = sess.Clear()
	})

	appCtx := &cli.Context{
		Config:  cfg,
		Session: sess,
		Client:  client,
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
