// Package config loads the tally CLI configuration from TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultFile is the configuration file looked up in the working directory
const DefaultFile = "tally.toml"

// Log levels accepted in [log] level
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

type Config struct {
	Log       LogConfig       `toml:"log"`
	Catalog   CatalogConfig   `toml:"catalog"`
	Scenarios ScenariosConfig `toml:"scenarios"`
}

type LogConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

type CatalogConfig struct {
	PerPage int    `toml:"per_page"`
	Data    string `toml:"data"` // empty uses the embedded sample catalog
}

type ScenariosConfig struct {
	Dir string `toml:"dir"` // extra *.yaml scenario files run after the builtins
}

func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: LevelInfo,
		},
		Catalog: CatalogConfig{
			PerPage: 36,
		},
	}
}

// Load reads the file at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	cfg.resolvePaths(filepath.Dir(path))
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Log.Level {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
	case "":
		c.Log.Level = LevelInfo
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Log.Level)
	}

	if c.Catalog.PerPage < 0 {
		return fmt.Errorf("invalid catalog.per_page: %d (must be positive)", c.Catalog.PerPage)
	}
	if c.Catalog.PerPage == 0 {
		c.Catalog.PerPage = 36
	}

	return nil
}

// resolvePaths makes relative file settings relative to the config file
func (c *Config) resolvePaths(base string) {
	if c.Catalog.Data != "" && !filepath.IsAbs(c.Catalog.Data) {
		c.Catalog.Data = filepath.Join(base, c.Catalog.Data)
	}
	if c.Scenarios.Dir != "" && !filepath.IsAbs(c.Scenarios.Dir) {
		c.Scenarios.Dir = filepath.Join(base, c.Scenarios.Dir)
	}
}
