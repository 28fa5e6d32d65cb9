package config

import (
	"errors"
	"path/filepath"
	"strings"
)

// Config holds all arbor configuration.
type Config struct {
	Log      LogConfig    `koanf:"log"`
	Document string       `koanf:"document"`
	Theme    ThemeConfig  `koanf:"theme"`
	Keymap   KeymapConfig `koanf:"keymap"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `koanf:"level"`
	// File receives log output. Empty discards logs while the terminal
	// UI runs and writes to stderr in headless commands.
	File string `koanf:"file"`
}

// ThemeConfig holds hex colors for the outline. Empty keeps the default.
type ThemeConfig struct {
	Selected   string `koanf:"selected"`
	Token      string `koanf:"token"`
	Collection string `koanf:"collection"`
	Top        string `koanf:"top"`
}

// KeymapConfig maps key specs to action names per mode.
type KeymapConfig struct {
	Navigate map[string]string `koanf:"navigate"`
	Edit     map[string]string `koanf:"edit"`
}

// Default log level.
const DefaultLogLevel = "info"

// defaults returns the lowest configuration layer.
func defaults() map[string]any {
	return map[string]any{
		"log.level": DefaultLogLevel,
		"log.file":  "",
		"document":  "",
	}
}

var validLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "warning": true, "error": true,
}

// Validate checks values that the rest of the program cannot recover
// from. Theme colors and keymaps are validated where they are applied.
func (c *Config) Validate() error {
	var errs []error
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, &ValidationError{Path: "log.level", Message: "must be debug, info, warn or error", Value: c.Log.Level})
	}
	if c.Document != "" {
		switch strings.ToLower(filepath.Ext(c.Document)) {
		case ".yaml", ".yml", ".lua":
		default:
			errs = append(errs, &ValidationError{Path: "document", Message: "must be a .yaml, .yml or .lua file", Value: c.Document})
		}
	}
	return errors.Join(errs...)
}
