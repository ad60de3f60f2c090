// Package session holds the authenticated identity for the running client.
//
// The identity is persisted as a JSON blob in a fixed file under the state
// directory so it survives restarts. A corrupt or unreadable blob is treated
// as "no session" rather than an error; logging in again simply rewrites it.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/example/frontdesk/internal/constants"
	"github.com/example/frontdesk/internal/logger"
	"github.com/example/frontdesk/internal/models"
)

// Identity is the authenticated account plus its bearer token.
type Identity struct {
	Token       string         `json:"token"`
	AccountID   string         `json:"accountId"`
	Name        string         `json:"name"`
	FirstName   string         `json:"firstName"`
	Role        constants.Role `json:"role"`
	PhoneNumber string         `json:"phoneNumber,omitempty"`
}

// FromLogin builds an Identity from a successful login response.
func FromLogin(resp models.LoginResponse) Identity {
	return Identity{
		Token:       resp.Token,
		AccountID:   resp.Account.ID,
		Name:        resp.Account.Name,
		FirstName:   resp.Account.FirstName,
		Role:        constants.Role(resp.Account.Role),
		PhoneNumber: resp.Account.PhoneNumber,
	}
}

// DisplayName returns the identity's presentation name.
func (i Identity) DisplayName() string {
	if i.FirstName == "" {
		return i.Name
	}
	return i.FirstName + " " + i.Name
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == constants.RoleAdmin
}

// Expired reports whether the bearer token's exp claim has passed. Tokens
// without a parseable exp claim are not considered expired; the server stays
// the authority over token validity.
func (i Identity) Expired(now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(i.Token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Time.Before(now)
}

// TokenKeeper stores the bearer token out of band (in the OS keyring) so the
// session file on disk carries no secret.
type TokenKeeper interface {
	Get() (string, error)
	Set(token string) error
	Delete() error
}

// Store owns the single live Identity. At most one identity is live at a
// time; Establish replaces, Clear destroys.
type Store struct {
	path   string
	keeper TokenKeeper

	mu      sync.Mutex
	current *Identity
}

// Option configures a Store.
type Option func(*Store)

// WithTokenKeeper makes the store keep the token in the given keeper instead
// of the session file.
func WithTokenKeeper(k TokenKeeper) Option {
	return func(s *Store) { s.keeper = k }
}

// NewStore creates a session store persisting at path and loads any existing
// session.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{path: path}
	for _, opt := range opts {
		opt(s)
	}
	s.current = s.load()
	return s
}

// Current returns the live identity, or nil when logged out.
func (s *Store) Current() *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	id := *s.current
	return &id
}

// Token returns the live bearer token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// Establish replaces the live identity and persists it.
func (s *Store) Establish(id Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &id

	persisted := id
	if s.keeper != nil {
		if err := s.keeper.Set(id.Token); err == nil {
			persisted.Token = ""
		} else {
			logger.Warn("Keyring unavailable, keeping token in session file", "error", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	data, err := json.Marshal(persisted)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// Clear destroys the live identity and its persisted form. Safe to call when
// already logged out.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	if s.keeper != nil {
		_ = s.keeper.Delete()
	}
	err := os.Remove(s.path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *Store) load() *Identity {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var id Identity
	if err := json.Unmarshal(data, &id); err != nil {
		logger.Warn("Discarding unreadable session file", "path", s.path, "error", err)
		return nil
	}
	if id.Token == "" && s.keeper != nil {
		token, err := s.keeper.Get()
		if err != nil {
			return nil
		}
		id.Token = token
	}
	if id.Token == "" {
		return nil
	}
	return &id
}
