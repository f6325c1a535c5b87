// Package config loads user defaults from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/fsmiamoto/quokka-say/internal/colors"
	"github.com/fsmiamoto/quokka-say/internal/layout"
)

// Config mirrors the command-line flags. Zero values mean "not set".
type Config struct {
	Color          string `toml:"color"`
	Rainbow        string `toml:"rainbow"`
	Display        string `toml:"display"`
	Width          int    `toml:"width"`
	Figure         string `toml:"figure"`
	Fortune        bool   `toml:"fortune"`
	FortuneCommand string `toml:"fortune_command"`
}

// DefaultPath is <user config dir>/quokka-say/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config directory: %w", err)
	}
	return filepath.Join(dir, "quokka-say", "config.toml"), nil
}

// Load reads the config at path. A missing file yields the zero Config.
// A relative figure path is resolved against the config file's directory.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}

	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse config %q: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("config %q: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}

	if cfg.Figure != "" {
		cfg.Figure = resolvePath(cfg.Figure, filepath.Dir(path))
	}
	return cfg, nil
}

// Validate checks that every set value is one the CLI accepts.
func (c Config) Validate() error {
	if _, err := colors.ParseColor(c.Color); err != nil {
		return err
	}
	if _, err := colors.ParseRainbow(c.Rainbow); err != nil {
		return err
	}
	if _, err := layout.ParseMode(c.Display); err != nil {
		return err
	}
	if c.Width < 0 {
		return fmt.Errorf("width must be a non-negative integer, got %d", c.Width)
	}
	return nil
}

// resolvePath expands a leading "~/" and makes relative paths relative to
// base.
func resolvePath(p, base string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(base, p)
	}
	return p
}
