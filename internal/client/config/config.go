package config

import (
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/skillswap/internal/client/latency"
	"github.com/dmitrijs2005/skillswap/internal/dbx"
)

// Catalog backends.
const (
	CatalogSQLite = "sqlite"
	CatalogMemory = "memory"
)

// Config holds runtime settings for the SkillSwap CLI.
type Config struct {
	Delay          time.Duration `env:"SKILLSWAP_DELAY"`
	CatalogBackend string        `env:"SKILLSWAP_CATALOG"`
	CatalogDSN     string        `env:"SKILLSWAP_CATALOG_DSN"`
	LogLevel       string        `env:"SKILLSWAP_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Delay = latency.DefaultDelay
	c.CatalogBackend = CatalogSQLite
	c.CatalogDSN = dbx.MemoryDSN
	c.LogLevel = "info"
}

// Validate rejects settings the application cannot start with.
func (c *Config) Validate() error {
	if c.Delay < 0 {
		return fmt.Errorf("delay must not be negative, got %s", c.Delay)
	}
	switch c.CatalogBackend {
	case CatalogSQLite, CatalogMemory:
	default:
		return fmt.Errorf("unknown catalog backend %q", c.CatalogBackend)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays the .env
// file, the environment, JSON (if present) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, os.Args[1:]); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, os.Args[1:]); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
