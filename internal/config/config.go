// Package config reads process configuration from SITEWORKS_* environment
// variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// StoreKind selects the snapshot persistence backend.
type StoreKind string

const (
	StoreSQLite StoreKind = "sqlite"
	StoreFile   StoreKind = "file"
)

type Config struct {
	Store    StoreKind `env:"SITEWORKS_STORE" envDefault:"sqlite"`
	DBPath   string    `env:"SITEWORKS_DB"`
	FilePath string    `env:"SITEWORKS_FILE"`

	// VendorID scopes the session. Zero means "use the snapshot's vendor".
	VendorID int `env:"SITEWORKS_VENDOR"`

	LogLevel    slog.Level `env:"SITEWORKS_LOG_LEVEL" envDefault:"WARN"`
	LogUseCases bool       `env:"SITEWORKS_LOG_USE_CASES"`
}

// Load parses the environment and fills unset paths under ~/.siteworks.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	return load(filepath.Join(home, ".siteworks"))
}

func load(dataDir string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(dataDir, "siteworks.db")
	}
	if cfg.FilePath == "" {
		cfg.FilePath = filepath.Join(dataDir, "snapshot.json")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Store {
	case StoreSQLite, StoreFile:
	default:
		return fmt.Errorf("SITEWORKS_STORE must be %q or %q, got %q", StoreSQLite, StoreFile, c.Store)
	}
	if c.VendorID < 0 {
		return fmt.Errorf("SITEWORKS_VENDOR must not be negative, got %d", c.VendorID)
	}
	return nil
}

// StorePath is the location of the selected backend.
func (c Config) StorePath() string {
	if c.Store == StoreFile {
		return c.FilePath
	}
	return c.DBPath
}
