// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/hy4ri/todo-tui/internal/api"
	"gopkg.in/yaml.v3"
)

// Start views accepted by UIConfig.StartView.
const (
	ViewTodos = "todos"
	ViewUsers = "users"
)

// Config represents the application configuration.
type Config struct {
	API APIConfig `yaml:"api"`
	UI  UIConfig  `yaml:"ui"`
	Log LogConfig `yaml:"log"`
}

// APIConfig holds the GraphQL endpoint settings.
type APIConfig struct {
	Endpoint string `yaml:"endpoint"`
	Timeout  string `yaml:"timeout,omitempty"` // Go duration, e.g. "30s"
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	StartView string `yaml:"start_view,omitempty"` // "todos" or "users"

	// ReconcileCompleted moves tasks the server reports as completed into the
	// done list on every fetch, not only the ones checked off in this session.
	ReconcileCompleted bool `yaml:"reconcile_completed"`

	// DesktopAlerts raises a desktop notification alongside in-app alerts.
	DesktopAlerts bool `yaml:"desktop_alerts"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`  // debug, info, warn, error
	Format string `yaml:"format,omitempty"` // text, json, logfmt
	File   string `yaml:"file,omitempty"`   // defaults to <data dir>/todo-tui.log
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Endpoint: api.DefaultEndpoint,
			Timeout:  api.DefaultTimeout.String(),
		},
		UI: UIConfig{
			StartView: ViewTodos,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the configuration from the config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the values that cannot be defaulted.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.Endpoint)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("api.endpoint must be an absolute http(s) URL, got %q", c.API.Endpoint)
	}

	if _, err := c.Timeout(); err != nil {
		return err
	}

	switch c.UI.StartView {
	case "", ViewTodos, ViewUsers:
	default:
		return fmt.Errorf("ui.start_view must be %q or %q, got %q", ViewTodos, ViewUsers, c.UI.StartView)
	}

	return nil
}

// Timeout returns the parsed API timeout, falling back to the client default.
func (c *Config) Timeout() (time.Duration, error) {
	if c.API.Timeout == "" {
		return api.DefaultTimeout, nil
	}
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 0, fmt.Errorf("api.timeout: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("api.timeout must be positive, got %s", d)
	}
	return d, nil
}
