package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/example/frontdesk/internal/api"
	"github.com/example/frontdesk/internal/config"
	"github.com/example/frontdesk/internal/session"
)

// Context carries the shared application services into every command.
type Context struct {
	Config  *config.Config
	Session *session.Store
	Client  *api.Client
}

// RequireAuth returns an error when no signed-in session exists. Commands
// that talk to protected endpoints call this first so the user gets one
// clear message instead of a 401 from the server.
func (c *Context) RequireAuth() error {
	id := c.Session.Current()
	if id == nil {
		return fmt.Errorf("not signed in, run 'frontdesk login' first")
	}
	if id.Expired(time.Now()) {
		_ = c.Session.Clear()
		return fmt.Errorf("session expired, run 'frontdesk login' again")
	}
	return nil
}

// RequireAdmin returns an error unless the signed-in account is an admin.
func (c *Context) RequireAdmin() error {
	if err := c.RequireAuth(); err != nil {
		return err
	}
	if !c.Session.Current().IsAdmin() {
		return fmt.Errorf("this command requires an admin account")
	}
	return nil
}

// CommandContext bounds a one-shot CLI call with the configured API timeout.
func (c *Context) CommandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), c.Config.API.Timeout)
}
