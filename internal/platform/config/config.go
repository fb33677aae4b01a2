package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	// StateKey names the persisted progress blob.
	StateKey = "timearena_uxui_state_v1"

	StoreFile   = "file"
	StoreSQLite = "sqlite"

	envPrefix = "TIMEARENA_"
)

type Config struct {
	HomePath    string `env:"HOME" envDefault:"."`
	Store       string `env:"STORE" envDefault:"file"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	CatalogPath string `env:"CATALOG"`
	RulesPath   string `env:"RULES"`

	StateKey  string
	StatePath string
	DBPath    string
}

// Load reads an optional .env file from the working directory, then the
// TIMEARENA_* environment. A non-empty homePath overrides TIMEARENA_HOME.
func Load(homePath string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return LoadFrom(homePath, nil)
}

// LoadFrom parses configuration from environ instead of the process
// environment when environ is non-nil.
func LoadFrom(homePath string, environ map[string]string) (Config, error) {
	cfg := Config{}
	opts := env.Options{Prefix: envPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse config from environment: %w", err)
	}
	if strings.TrimSpace(homePath) != "" {
		cfg.HomePath = homePath
	}
	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	dataDir := filepath.Join(cfg.HomePath, ".timearena")
	cfg.StateKey = StateKey
	cfg.StatePath = filepath.Join(dataDir, StateKey+".json")
	cfg.DBPath = filepath.Join(dataDir, "timearena.db")
	if cfg.CatalogPath == "" {
		cfg.CatalogPath = filepath.Join(dataDir, "catalog.yaml")
	}
	if cfg.RulesPath == "" {
		cfg.RulesPath = filepath.Join(dataDir, "rules.md")
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.HomePath == "" {
		return fmt.Errorf("home path is required")
	}
	switch c.Store {
	case StoreFile, StoreSQLite:
	default:
		return fmt.Errorf("invalid %sSTORE %q (want %s or %s)", envPrefix, c.Store, StoreFile, StoreSQLite)
	}
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid %sLOG_LEVEL %q", envPrefix, c.LogLevel)
	}
	return nil
}

// EnsureDataDir creates the directory holding the state blob and database.
func (c Config) EnsureDataDir() error {
	if err := os.MkdirAll(filepath.Dir(c.StatePath), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	return nil
}
