// Package config loads simulator settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/memsim/mem/alloc"
	"github.com/joshuapare/memsim/mem/printer"
)

// FileName is the config file looked up in the user's config directory.
const FileName = "memsim.yaml"

// Supported languages for user-facing messages.
const (
	LangEnglish = "en"
	LangSpanish = "es"
)

// Config holds simulator settings.
type Config struct {
	// Capacity of the simulated region in units. Non-positive values fall
	// back to alloc.DefaultCapacity with a warning.
	Capacity int `yaml:"capacity"`

	// Width is the number of units per strip line; 0 sizes it to the terminal.
	Width int `yaml:"width"`

	// Filler is the single character drawn for free units.
	Filler string `yaml:"filler"`

	// Language selects message language ("en" or "es").
	Language string `yaml:"language"`

	// Color enables colored terminal output.
	Color bool `yaml:"color"`

	// Verify checks layout invariants after every mutation.
	Verify bool `yaml:"verify"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Capacity: alloc.DefaultCapacity,
		Width:    printer.DefaultWidth,
		Filler:   string(printer.DefaultFiller),
		Language: LangEnglish,
		Color:    true,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/memsim/memsim.yaml (or the platform
// equivalent), or "" when no config directory is known.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "memsim", FileName)
}

// Load reads path from fsys and overlays it on Default. A missing file is
// not an error when optional is true.
func Load(fsys afero.Fs, path string, optional bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings no front end can honour.
func (c Config) Validate() error {
	if c.Width < 0 {
		return fmt.Errorf("width must not be negative, got %d", c.Width)
	}
	if utf8.RuneCountInString(c.Filler) != 1 {
		return fmt.Errorf("filler must be a single character, got %q", c.Filler)
	}
	switch c.Language {
	case LangEnglish, LangSpanish:
	default:
		return fmt.Errorf("unsupported language %q (want %q or %q)", c.Language, LangEnglish, LangSpanish)
	}
	return nil
}

// FillerRune returns the filler as a rune.
func (c Config) FillerRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Filler)
	if r == utf8.RuneError {
		return printer.DefaultFiller
	}
	return r
}

// Save writes the config as YAML, creating parent directories.
func Save(fsys afero.Fs, path string, c Config) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return afero.WriteFile(fsys, path, data, 0o644)
}
