// Package config provides configuration loading from TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/trackctl/track/internal/domain"
)

// ConfigFileName is the name of the config file inside the config dir.
const ConfigFileName = "config.toml"

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from $XDG_CONFIG_HOME/track/config.toml.
type Loader struct {
	confDir string
}

// NewLoader creates a Loader using the default config directory.
func NewLoader() *Loader {
	return &Loader{confDir: defaultConfigDir()}
}

// NewLoaderWithDir creates a Loader with a custom config directory.
// This is useful for testing.
func NewLoaderWithDir(dir string) *Loader {
	return &Loader{confDir: dir}
}

func defaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "track")
}

// Load returns the configuration. Missing file or directory yields the
// defaults; a present but malformed file is an error.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()
	if l.confDir == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(filepath.Join(l.confDir, ConfigFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Unset keys fall back to defaults.
	if cfg.DataDir == "" {
		cfg.DataDir = domain.DefaultDataDir()
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.TUI.RefreshSeconds <= 0 {
		cfg.TUI.RefreshSeconds = 1
	}
	return cfg, nil
}
