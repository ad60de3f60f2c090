package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, 9, cfg.Rooms.PageSize)
	assert.Equal(t, 9, cfg.Reservations.PageSize)
	assert.Equal(t, 30, cfg.Statistics.WindowDays)
	assert.Equal(t, 5, cfg.Statistics.TopCompaniesLimit)
}

func TestLoadFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frontdesk.yaml")
	content := `
api:
  base_url: https://api.example.test
  timeout_seconds: 5
rooms:
  page_size: 12
reservations:
  page_size: 6
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.test", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, 12, cfg.Rooms.PageSize)
	assert.Equal(t, 6, cfg.Reservations.PageSize)
}

func TestLoadEnvOverridesBaseURL(t *testing.T) {
	t.Setenv("FRONTDESK_API_URL", "https://staging.example.test")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "https://staging.example.test", cfg.API.BaseURL)
}

func TestSessionPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frontdesk.yaml")
	require.NoError(t, os.WriteFile(path, []byte("state_dir: "+dir), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "session.json"), cfg.SessionPath())
}
