// Package config loads app configuration from the user's config file and
// DAILYQ_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Storage backend names.
const (
	BackendSQLite = "sqlite"
	BackendDiskv  = "diskv"
)

type Config struct {
	Backend   string `mapstructure:"backend"`    // sqlite or diskv
	Path      string `mapstructure:"path"`       // database file (sqlite) or base directory (diskv)
	ExportDir string `mapstructure:"export_dir"` // where export files land
	Debug     bool   `mapstructure:"debug"`
}

// Dir returns the app's config directory, ~/.config/dailyq on most systems.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(base, "dailyq"), nil
}

// Load reads config.yaml from the config directory, if present, applies
// DAILYQ_* environment overrides, and falls back to defaults for the rest.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("backend", BackendSQLite)
	v.SetDefault("path", filepath.Join(dir, "dailyq.db"))
	v.SetDefault("export_dir", filepath.Join(dir, "exports"))
	v.SetDefault("debug", false)

	v.SetConfigName("config") // .yaml is implicit
	v.AddConfigPath(dir)
	v.SetEnvPrefix("DAILYQ")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Backend != BackendSQLite && cfg.Backend != BackendDiskv {
		return nil, fmt.Errorf("unknown storage backend %q (want %s or %s)", cfg.Backend, BackendSQLite, BackendDiskv)
	}

	return &cfg, nil
}
