// ABOUTME: Local configuration for the newsdesk store
// ABOUTME: JSON file at the xdg data path with .env and environment overrides
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
)

const (
	// AppName is the application name for data paths.
	AppName = "newsdesk"

	// ConfigFileName is where we store local config.
	ConfigFileName = "newsdesk-config.json"
)

// Storage backends.
const (
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
)

// Environment overrides.
const (
	EnvIdentity = "NEWSDESK_IDENTITY"
	EnvBackend  = "NEWSDESK_BACKEND"
	EnvDBPath   = "NEWSDESK_DB_PATH"
)

// Config holds local operator settings. Resolution order: flags beat
// environment, environment beats the config file.
type Config struct {
	// Identity is the principal stamped on every local invocation.
	Identity string `json:"identity,omitempty"`

	// Backend selects the storage engine: badger (default) or sqlite.
	Backend string `json:"backend,omitempty"`

	// DBPath overrides the default data location.
	DBPath string `json:"db_path,omitempty"`
}

// DefaultConfig returns a new config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{Backend: BackendBadger}
}

// DefaultDBPath returns the xdg data location for the given backend.
func DefaultDBPath(backend string) string {
	if backend == BackendSQLite {
		return filepath.Join(xdg.DataHome, AppName, "newsdesk.db")
	}
	return filepath.Join(xdg.DataHome, AppName, "badger")
}

// configPath returns the path to the config file.
func configPath() (string, error) {
	dataDir := filepath.Join(xdg.DataHome, AppName)
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", err
	}
	return filepath.Join(dataDir, ConfigFileName), nil
}

// Load reads config from disk, then applies .env and environment overrides.
// Missing or invalid files fall back to defaults.
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := DefaultConfig()

	path, err := configPath()
	if err == nil {
		if data, err := os.ReadFile(path); err == nil {
			if err := json.Unmarshal(data, cfg); err != nil {
				cfg = DefaultConfig()
			}
		}
	}

	if v := os.Getenv(EnvIdentity); v != "" {
		cfg.Identity = v
	}
	if v := os.Getenv(EnvBackend); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.DBPath = v
	}
	if cfg.Backend == "" {
		cfg.Backend = BackendBadger
	}
	return cfg, nil
}

// Save persists the config to disk.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
