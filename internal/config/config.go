package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Backend names accepted in the disabled_backends list.
var knownBackends = map[string]bool{
	"system-tray":         true,
	"tray":                true,
	"freedesktop-dbus":    true,
	"dbus":                true,
	"notification-center": true,
	"growl":               true,
	"growl-legacy":        true,
}

// LogConfig holds settings for the long-running tray command's logger.
type LogConfig struct {
	// Level is the logging level (debug, info, warn, error).
	Level string `yaml:"level,omitempty"`
	// JSON enables JSON-formatted logging.
	JSON bool `yaml:"json,omitempty"`
	// File is the path to the log file; empty logs to stderr.
	File string `yaml:"file,omitempty"`
	// MaxSize is the maximum log file size in MB before rotation.
	MaxSize int `yaml:"max_size,omitempty"`
}

// Config represents the Herald configuration.
type Config struct {
	// AppName is the program name reported to notification services.
	AppName string `yaml:"app_name,omitempty"`
	// Icon is the path to a default icon image (PNG/JPEG) attached to
	// notifications that carry none.
	Icon string `yaml:"icon,omitempty"`
	// DefaultTimeoutMS is the notification timeout in milliseconds used
	// when a request does not specify one. Milliseconds match what the
	// notification backends consume on the wire.
	DefaultTimeoutMS int `yaml:"default_timeout_ms,omitempty"`
	// DisabledBackends lists backend modes that must never be selected.
	DisabledBackends []string `yaml:"disabled_backends,omitempty"`
	// Log holds logger settings for the tray command.
	Log LogConfig `yaml:"log,omitempty"`

	// filePath is the path where this config was loaded from.
	filePath string `yaml:"-"`
}

// Default returns a new Config with default values.
func Default() *Config {
	paths := GetPaths()
	return &Config{
		AppName:          AppName,
		DefaultTimeoutMS: 5000,
		Log: LogConfig{
			Level: "info",
		},
		filePath: paths.ConfigFile,
	}
}

// Load loads the configuration from the default path.
func Load() (*Config, error) {
	paths := GetPaths()
	return LoadFrom(paths.ConfigFile)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	cfg.filePath = path

	// #nosec G304 - path is the config file path (controlled, from user config directory)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file, return defaults
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults for missing values
	if cfg.AppName == "" {
		cfg.AppName = AppName
	}
	if cfg.DefaultTimeoutMS == 0 {
		cfg.DefaultTimeoutMS = 5000
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	for _, name := range c.DisabledBackends {
		if !knownBackends[name] {
			return fmt.Errorf("unknown backend %q in disabled_backends", name)
		}
	}
	if c.DefaultTimeoutMS < 0 {
		return errors.New("default_timeout_ms must not be negative")
	}
	return nil
}

// Save writes the configuration to its file path.
func (c *Config) Save() error {
	if c.filePath == "" {
		return errors.New("config file path not set")
	}

	// Ensure the directory exists
	paths := GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.filePath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Timeout returns the default notification timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.DefaultTimeoutMS) * time.Millisecond
}

// FilePath returns the path this configuration was loaded from.
func (c *Config) FilePath() string {
	return c.filePath
}
