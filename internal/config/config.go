// Package config loads rnav's YAML settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/rnav/internal/fs"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Editor     string      `yaml:"editor"`      // Command used to open the picked file
	ShowHidden bool        `yaml:"show_hidden"` // List dotfiles
	Ignore     []string    `yaml:"ignore"`      // Glob patterns of names never listed
	Log        LogConfig   `yaml:"log"`
	Theme      ThemeConfig `yaml:"theme"`
}

// LogConfig selects where diagnostics go. An empty File discards them.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// ThemeConfig holds tcell color names ("red", "#ff8800", "color33").
// Empty values keep the built-in colors.
type ThemeConfig struct {
	Directory   string `yaml:"directory"`
	File        string `yaml:"file"`
	Executable  string `yaml:"executable"`
	SelectionBg string `yaml:"selection_bg"`
	SelectionFg string `yaml:"selection_fg"`
	Match       string `yaml:"match"`
	Status      string `yaml:"status"`
	Notice      string `yaml:"notice"`
}

// DefaultPath is ~/.config/rnav/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "rnav", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Keys absent from the file keep their defaults.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	cfg.Editor = strings.TrimSpace(cfg.Editor)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Ignore: []string{},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that globs compile, the log level parses and colors resolve.
func (c *Config) Validate() error {
	if _, err := fsutil.CompileIgnore(c.Ignore); err != nil {
		return err
	}
	if c.Log.Level != "" {
		if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("log level: %w", err)
		}
	}

	colors := map[string]string{
		"directory":    c.Theme.Directory,
		"file":         c.Theme.File,
		"executable":   c.Theme.Executable,
		"selection_bg": c.Theme.SelectionBg,
		"selection_fg": c.Theme.SelectionFg,
		"match":        c.Theme.Match,
		"status":       c.Theme.Status,
		"notice":       c.Theme.Notice,
	}
	for key, name := range colors {
		if name == "" {
			continue
		}
		if _, err := ParseColor(name); err != nil {
			return fmt.Errorf("theme.%s: %w", key, err)
		}
	}
	return nil
}

// ParseColor resolves a tcell color name. Unknown names are an error rather
// than silently falling back to the terminal default.
func ParseColor(name string) (tcell.Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "default" {
		return tcell.ColorDefault, nil
	}
	color := tcell.GetColor(name)
	if color == tcell.ColorDefault {
		return color, fmt.Errorf("unknown color %q", name)
	}
	return color, nil
}
