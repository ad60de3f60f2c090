package config

import (
	"os"
	"path/filepath"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/example/frontdesk/internal/constants"
)

// Config represents the overall application configuration.
type Config struct {
	API          APIConfig        `yaml:"api"`
	Rooms        ListConfig       `yaml:"rooms"`
	Reservations ListConfig       `yaml:"reservations"`
	Statistics   StatisticsConfig `yaml:"statistics"`
	Export       ExportConfig     `yaml:"export"`
	StateDir     string           `yaml:"state_dir"`
}

// APIConfig holds the remote API connection settings.
type APIConfig struct {
	BaseURL         string        `yaml:"base_url"`
	TimeoutSeconds  int           `yaml:"timeout_seconds"`
	Timeout         time.Duration `yaml:"-"`
	RateLimitPerSec float64       `yaml:"rate_limit_per_sec"`
	CacheTTLSeconds int           `yaml:"cache_ttl_seconds"`
}

// ListConfig holds the per-list pagination settings. Page size is a fixed
// configuration value, not user-adjustable at runtime.
type ListConfig struct {
	PageSize int `yaml:"page_size"`
}

// StatisticsConfig holds the statistics view settings.
type StatisticsConfig struct {
	WindowDays        int `yaml:"window_days"`
	TopCompaniesLimit int `yaml:"top_companies_limit"`
}

// ExportConfig holds CSV export settings.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// Load reads the configuration from the given path. A missing file yields the
// defaults; a malformed file is an error.
func Load(path string) (*Config, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	f, err := os.Open(expanded)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else {
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, err
		}
	}

	applyDefaults(&cfg)

	// Environment always wins for the API endpoint so a session can be
	// pointed at a staging deployment without editing the config file.
	if url := os.Getenv("FRONTDESK_API_URL"); url != "" {
		cfg.API.BaseURL = url
	}

	stateDir, err := homedir.Expand(cfg.StateDir)
	if err != nil {
		return nil, err
	}
	cfg.StateDir = stateDir
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "http://localhost:8080"
	}
	if cfg.API.TimeoutSeconds <= 0 {
		cfg.API.TimeoutSeconds = 30
	}
	cfg.API.Timeout = time.Duration(cfg.API.TimeoutSeconds) * time.Second
	if cfg.API.RateLimitPerSec <= 0 {
		cfg.API.RateLimitPerSec = 10
	}
	if cfg.API.CacheTTLSeconds <= 0 {
		cfg.API.CacheTTLSeconds = 60
	}
	if cfg.Rooms.PageSize <= 0 {
		cfg.Rooms.PageSize = constants.DefaultPageSize
	}
	if cfg.Reservations.PageSize <= 0 {
		cfg.Reservations.PageSize = constants.DefaultPageSize
	}
	if cfg.Statistics.WindowDays <= 0 {
		cfg.Statistics.WindowDays = constants.DefaultStatsWindowDays
	}
	if cfg.Statistics.TopCompaniesLimit <= 0 {
		cfg.Statistics.TopCompaniesLimit = constants.DefaultTopCompaniesLimit
	}
	if cfg.StateDir == "" {
		cfg.StateDir = constants.DefaultStateDirPath
	}
	if cfg.Export.Dir == "" {
		cfg.Export.Dir = "."
	}
}

// SessionPath returns the path of the persisted session blob.
func (c *Config) SessionPath() string {
	return filepath.Join(c.StateDir, constants.SessionFileName)
}
