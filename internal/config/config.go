// Package config loads the demo host settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("invalid config")

// Config mirrors the editor and edit-context options a host may tune.
type Config struct {
	LogLevel                string  `yaml:"log_level"`
	LogFile                 string  `yaml:"log_file"`
	ShowLineNumbers         bool    `yaml:"show_line_numbers"`
	EmptySelectionClipboard bool    `yaml:"empty_selection_clipboard"`
	HistoryLimit            int     `yaml:"history_limit"`
	TabWidth                int     `yaml:"tab_width"`
	LineHeight              float64 `yaml:"line_height"`
	CharWidth               float64 `yaml:"char_width"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		LogLevel:                "info",
		ShowLineNumbers:         true,
		EmptySelectionClipboard: true,
		HistoryLimit:            1000,
		TabWidth:                4,
		LineHeight:              1,
		CharWidth:               1,
	}
}

// Load reads path on top of Default. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the editor cannot lay out.
func (c Config) Validate() error {
	switch {
	case c.LineHeight <= 0:
		return fmt.Errorf("%w: line_height must be positive, got %v", ErrInvalid, c.LineHeight)
	case c.CharWidth <= 0:
		return fmt.Errorf("%w: char_width must be positive, got %v", ErrInvalid, c.CharWidth)
	case c.TabWidth < 1:
		return fmt.Errorf("%w: tab_width must be at least 1, got %d", ErrInvalid, c.TabWidth)
	case c.HistoryLimit < 0:
		return fmt.Errorf("%w: history_limit must not be negative, got %d", ErrInvalid, c.HistoryLimit)
	}
	return nil
}
