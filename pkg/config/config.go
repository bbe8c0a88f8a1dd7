// Package config handles loading and validation of user configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sgaunet/origin-link/internal/logger"
	"gopkg.in/yaml.v3"
)

// Actions applied to a generated link.
const (
	ActionPrint = "print"
	ActionCopy  = "copy"
	ActionOpen  = "open"
)

const defaultRemote = "origin"

var (
	errInvalidAction   = errors.New("action must be print, copy or open")
	errInvalidLogLevel = errors.New("log_level must be debug, info, warn or error")
	errInvalidRemote   = errors.New("remote name must not be empty or contain whitespace")
)

// Config represents the user configuration of origin-link.
type Config struct {
	// Remote is the remote used when --remote is not given.
	Remote string `yaml:"remote"`
	// Action is what happens to the link when neither --copy nor --open is given.
	Action string `yaml:"action"`
	// LogLevel is the default for --log-level.
	LogLevel string `yaml:"log_level"`
	// APIFallback asks the GitHub API for the default branch when local refs
	// cannot answer.
	APIFallback bool `yaml:"api_fallback"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Remote:   defaultRemote,
		Action:   ActionPrint,
		LogLevel: "info",
	}
}

// Path returns the location of the configuration file.
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "origin-link", "config.yml"), nil
}

// Load reads the configuration file from the user's home directory.
// A missing file yields [Default].
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom reads the configuration at configPath. Unset fields keep their
// default value.
func LoadFrom(configPath string) (*Config, error) {
	// #nosec G304 - Reading config from user's home directory is intentional
	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.normalize()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate checks every field against its allowed values.
func (c *Config) Validate() error {
	if c.Remote == "" || strings.ContainsAny(c.Remote, " \t\r\n") {
		return fmt.Errorf("%w: %q", errInvalidRemote, c.Remote)
	}

	switch c.Action {
	case ActionPrint, ActionCopy, ActionOpen:
	default:
		return fmt.Errorf("%w: %q", errInvalidAction, c.Action)
	}

	if !logger.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("%w: %q", errInvalidLogLevel, c.LogLevel)
	}

	return nil
}

// normalize trims whitespace and fills fields left empty in the file.
func (c *Config) normalize() {
	defaults := Default()

	c.Remote = strings.TrimSpace(c.Remote)
	c.Action = strings.ToLower(strings.TrimSpace(c.Action))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))

	if c.Remote == "" {
		c.Remote = defaults.Remote
	}
	if c.Action == "" {
		c.Action = defaults.Action
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
}
