// Package config handles the XDG configuration directory, the settings file
// and the stored API token.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "weekboard"

	// SettingsFile holds the remote store settings.
	SettingsFile = "config.yaml"

	// TokenFile is the stored API token filename.
	TokenFile = "token.json"

	// DefaultBaseURL is used when config.yaml is absent or has no base_url.
	DefaultBaseURL = "http://localhost:8080"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// Settings are the values read from config.yaml.
type Settings struct {
	// BaseURL is the remote store's root URL, without the /api suffix.
	BaseURL string `yaml:"base_url"`

	// TimeoutSeconds overrides the per-request timeout.
	TimeoutSeconds int `yaml:"timeout"`
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/weekboard or $HOME/.config/weekboard.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{Dir: dir}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SettingsPath returns the path to the settings file.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile)
}

// TokenPath returns the path to the stored API token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}

// Load reads config.yaml from the config directory. A missing file yields
// the defaults.
func (c *Config) Load() (Settings, error) {
	settings := Settings{BaseURL: DefaultBaseURL}

	data, err := os.ReadFile(c.SettingsPath())
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return Settings{}, err
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("invalid %s: %w", SettingsFile, err)
	}
	if settings.BaseURL == "" {
		settings.BaseURL = DefaultBaseURL
	}
	return settings, nil
}
