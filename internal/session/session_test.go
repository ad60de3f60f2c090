package session

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/frontdesk/internal/constants"
)

func sessionPath(t *testing.T) string {
	return filepath.Join(t.TempDir(), "session.json")
}

func TestEstablishThenReload(t *testing.T) {
	path := sessionPath(t)
	store := NewStore(path)

	id := Identity{Token: "tok-1", AccountID: "a1", Name: "Doe", FirstName: "Jo", Role: constants.RoleStaff}
	require.NoError(t, store.Establish(id))

	got := store.Current()
	require.NotNil(t, got)
	assert.Equal(t, "tok-1", got.Token)
	assert.Equal(t, "Jo Doe", got.DisplayName())

	// A fresh store picks the persisted blob back up.
	reloaded := NewStore(path)
	got = reloaded.Current()
	require.NotNil(t, got)
	assert.Equal(t, "a1", got.AccountID)
}

func TestCorruptBlobLoadsAsNoSession(t *testing.T) {
	path := sessionPath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	store := NewStore(path)
	assert.Nil(t, store.Current())
	assert.Equal(t, "", store.Token())
}

func TestClearIsIdempotent(t *testing.T) {
	path := sessionPath(t)
	store := NewStore(path)
	require.NoError(t, store.Establish(Identity{Token: "tok"}))

	require.NoError(t, store.Clear())
	assert.Nil(t, store.Current())
	require.NoError(t, store.Clear())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

type fakeKeeper struct {
	token string
	err   error
}

func (f *fakeKeeper) Get() (string, error) { return f.token, f.err }
func (f *fakeKeeper) Set(t string) error   { f.token = t; return f.err }
func (f *fakeKeeper) Delete() error        { f.token = ""; return nil }

func TestKeeperElidesTokenFromFile(t *testing.T) {
	path := sessionPath(t)
	keeper := &fakeKeeper{}
	store := NewStore(path, WithTokenKeeper(keeper))
	require.NoError(t, store.Establish(Identity{Token: "secret", AccountID: "a1"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
	assert.Equal(t, "secret", keeper.token)

	reloaded := NewStore(path, WithTokenKeeper(keeper))
	got := reloaded.Current()
	require.NotNil(t, got)
	assert.Equal(t, "secret", got.Token)
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, Identity{Role: constants.RoleAdmin}.IsAdmin())
	assert.False(t, Identity{Role: constants.RoleStaff}.IsAdmin())
}

// unsignedJWT builds an unsigned token with the given exp for expiry checks.
func unsignedJWT(t *testing.T, exp time.Time) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	payload, err := json.Marshal(map[string]any{"exp": exp.Unix()})
	require.NoError(t, err)
	return fmt.Sprintf("%s.%s.", header, base64.RawURLEncoding.EncodeToString(payload))
}

func TestExpired(t *testing.T) {
	now := time.Date(2024, 8, 10, 12, 0, 0, 0, time.UTC)

	past := Identity{Token: unsignedJWT(t, now.Add(-time.Hour))}
	assert.True(t, past.Expired(now))

	future := Identity{Token: unsignedJWT(t, now.Add(time.Hour))}
	assert.False(t, future.Expired(now))

	opaque := Identity{Token: "not-a-jwt"}
	assert.False(t, opaque.Expired(now))
}
