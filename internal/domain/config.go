package domain

import (
	"os"
	"path/filepath"
)

// Config represents the application configuration.
type Config struct {
	DataDir string    `toml:"data_dir"` // Directory holding data.json and archive.db
	Log     LogConfig `toml:"log"`      // [log] settings
	TUI     TUIConfig `toml:"tui"`      // [tui] settings
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// TUIConfig holds dashboard settings from the [tui] section.
type TUIConfig struct {
	RefreshSeconds int `toml:"refresh_seconds"` // Live view refresh interval
}

// NewDefaultConfig returns the configuration used when no config file
// exists.
func NewDefaultConfig() *Config {
	return &Config{
		DataDir: DefaultDataDir(),
		Log:     LogConfig{Level: "info"},
		TUI:     TUIConfig{RefreshSeconds: 1},
	}
}

// DefaultDataDir returns the platform user data directory for track
// ($XDG_DATA_HOME/track, falling back to ~/.local/share/track).
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "track")
}
