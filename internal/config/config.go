// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todo/internal/store/jsonstore"
	"github.com/idilsaglam/todo/internal/todo"
)

// Default values.
const (
	DefaultFile         = jsonstore.DefaultFile
	DefaultDeletePolicy = string(todo.DeleteStrict)
	DefaultTheme        = "classic"
	DefaultLogLevel     = "warn"
)

// FileNames are the config files looked up in the working directory, in order.
var FileNames = []string{"todo.toml", ".todo.toml"}

// Themes lists the accepted theme names.
var Themes = []string{"classic", "neon", "mono"}

// Config holds the full configuration for the todo CLI.
type Config struct {
	File         string `toml:"file"`
	DeletePolicy string `toml:"delete_policy"` // strict | confirm
	Theme        string `toml:"theme"`         // classic | neon | mono
	LogLevel     string `toml:"log_level"`

	// Source is the config file that was read, if any.
	Source string `toml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		File:         DefaultFile,
		DeletePolicy: DefaultDeletePolicy,
		Theme:        DefaultTheme,
		LogLevel:     DefaultLogLevel,
	}
}

// Load builds the configuration from, in increasing priority:
// 1. Defaults
// 2. Config file (TOML) found in dir
// 3. Environment variables
// Flags are applied on top by the caller.
func Load(dir string) (*Config, error) {
	cfg := Default()

	if path := findConfigFile(dir); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
		cfg.Source = path
	}

	loadFromEnv(cfg)
	return cfg, nil
}

func findConfigFile(dir string) string {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TODO_FILE"); v != "" {
		cfg.File = v
	}
	if v := os.Getenv("TODO_DELETE_POLICY"); v != "" {
		cfg.DeletePolicy = v
	}
	if v := os.Getenv("TODO_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("TODO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.File) == "" {
		return fmt.Errorf("data file path is empty")
	}
	if _, err := c.Policy(); err != nil {
		return err
	}
	if !validTheme(c.Theme) {
		return fmt.Errorf("invalid theme %q: must be one of %v", c.Theme, Themes)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Policy returns the parsed delete policy.
func (c *Config) Policy() (todo.DeletePolicy, error) {
	return todo.ParseDeletePolicy(c.DeletePolicy)
}

// Level returns the parsed log level.
func (c *Config) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

func validTheme(name string) bool {
	for _, t := range Themes {
		if strings.EqualFold(t, name) {
			return true
		}
	}
	return false
}
