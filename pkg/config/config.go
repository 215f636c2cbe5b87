// Package config loads the TOML bar configuration. The file lives at
// $XDG_CONFIG_HOME/dzgen/dzgen.toml unless DZGEN_CONFIG points elsewhere;
// a missing file yields the defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// EnvConfig overrides the config file location.
const EnvConfig = "DZGEN_CONFIG"

// Config is the top-level configuration.
type Config struct {
	Bar  BarConfig  `toml:"bar"`
	Demo DemoConfig `toml:"demo"`
}

// BarConfig maps onto the renderer's command line.
type BarConfig struct {
	Command    string `toml:"command"`
	Font       string `toml:"font"`
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	X          int    `toml:"x"`
	Y          int    `toml:"y"`
	TitleAlign string `toml:"title_align"`
}

// DemoConfig controls the built-in demo bar.
type DemoConfig struct {
	// Interval between updates, as a Go duration string ("1s", "500ms").
	Interval string `toml:"interval"`

	ClockFormat string `toml:"clock_format"`
	ShowLoad    bool   `toml:"show_load"`
	ShowMemory  bool   `toml:"show_memory"`

	// SmoothWindow is the number of samples averaged for the meters.
	SmoothWindow int `toml:"smooth_window"`

	// Theme is an optional YAML palette file; empty uses the built-in
	// palette.
	Theme string `toml:"theme"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Bar: BarConfig{
			Command:    "dzen2",
			Background: "#1f1f1f",
			Foreground: "#dcdccc",
			Height:     18,
			TitleAlign: "l",
		},
		Demo: DemoConfig{
			Interval:     "1s",
			ClockFormat:  "Mon 02 Jan 15:04:05",
			ShowLoad:     true,
			ShowMemory:   true,
			SmoothWindow: 5,
		},
	}
}

// ParsedInterval parses the demo update interval, falling back to one
// second on an empty or malformed value.
func (d DemoConfig) ParsedInterval() time.Duration {
	iv, err := time.ParseDuration(d.Interval)
	if err != nil || iv <= 0 {
		return time.Second
	}
	return iv
}

// Path returns the config file location: the DZGEN_CONFIG override when
// set, else the XDG config dir.
func Path() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return filepath.Join(xdg.ConfigHome, "dzgen", "dzgen.toml")
}

// Load reads the file at path. A missing file is not an error: it returns
// Default().
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration as TOML, creating parent directories.
func (c Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
