// Package config loads marko's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const configFileName = "config.toml"

// Config holds the user-tunable settings. Zero values fall back to the
// defaults below.
type Config struct {
	// Title is the fixed header written at the top of the outline.
	Title string `toml:"title"`
	// Bullet is the marker prefixed to every outline entry.
	Bullet string `toml:"bullet"`
	// Modes maps file extensions (with the dot) to editing mode names,
	// overriding the built-in extension table.
	Modes map[string]string `toml:"modes"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{Title: "Marked text", Bullet: "-"}
}

// configDir returns XDG_CONFIG_HOME/marko or ~/.config/marko.
func configDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "marko")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "marko")
}

// Load reads the user config file if it exists, otherwise returns defaults.
func Load() (Config, error) {
	return LoadFile(filepath.Join(configDir(), configFileName))
}

// LoadFile reads a config file from an explicit path. A missing file is not
// an error; a malformed one is.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Title == "" {
		cfg.Title = Default().Title
	}
	if cfg.Bullet == "" {
		cfg.Bullet = Default().Bullet
	}
	return cfg, nil
}

// ModeFor resolves a filename to an editing mode name using the config's
// extension overrides, falling back to fallback when none applies.
func (c Config) ModeFor(filename string, fallback func(string) string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if mode, ok := c.Modes[ext]; ok {
		return mode
	}
	return fallback(filename)
}
