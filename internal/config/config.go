// Package config handles configuration file loading and parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Duration is a time.Duration that can be unmarshaled from human-readable
// strings. Supports formats like "3.2s", "1m", or integer milliseconds.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)

	// Bare integers are milliseconds
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: must be like '3.2s', '1m' or milliseconds: %w", s, err)
	}
	*d = Duration(dur)
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML output.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Position represents where the toast stack anchors on the surface.
type Position string

const (
	PositionTopLeft     Position = "top-left"
	PositionTopRight    Position = "top-right"
	PositionBottomLeft  Position = "bottom-left"
	PositionBottomRight Position = "bottom-right"
)

// ValidPositions returns all valid position values.
func ValidPositions() []Position {
	return []Position{
		PositionTopLeft,
		PositionTopRight,
		PositionBottomLeft,
		PositionBottomRight,
	}
}

// Config is the toaster configuration, loaded from
// $XDG_CONFIG_HOME/toaster/config.toml.
type Config struct {
	Surface   SurfaceConfig   `toml:"surface"`
	Theme     ThemeConfig     `toml:"theme"`
	Demo      DemoConfig      `toml:"demo"`
	Clipboard ClipboardConfig `toml:"clipboard"`
}

// SurfaceConfig contains presentation surface settings.
type SurfaceConfig struct {
	DefaultDuration Duration `toml:"default_duration"` // Lifetime when the caller passes none
	MaxVisible      int      `toml:"max_visible"`      // Toasts rendered at once; the rest collapse to a count
	Position        string   `toml:"position"`         // "top-right", "bottom-left", etc.
	Gap             int      `toml:"gap"`              // Blank lines between stacked toasts
}

// ThemeConfig contains theme settings.
type ThemeConfig struct {
	Name string `toml:"name"` // Theme name without .yaml extension
}

// ClipboardConfig controls how toast text is copied out of the TUI.
type ClipboardConfig struct {
	Command string `toml:"command"` // Override auto-detection, e.g. "wl-copy"
}

// DemoConfig contains settings for the interactive demo.
type DemoConfig struct {
	SaveCountdownSeconds int      `toml:"save_countdown_seconds"` // Countdown on the "saving" demo toast
	UndoWindow           Duration `toml:"undo_window"`            // Lifetime of the undo-delete demo toast
	ShowWelcome          bool     `toml:"show_welcome"`           // Toast a greeting when the demo starts
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Surface: SurfaceConfig{
			DefaultDuration: Duration(3200 * time.Millisecond),
			MaxVisible:      5,
			Position:        string(PositionTopRight),
			Gap:             1,
		},
		Theme: ThemeConfig{
			Name: "default",
		},
		Demo: DemoConfig{
			SaveCountdownSeconds: 3,
			UndoWindow:           Duration(10 * time.Second),
			ShowWelcome:          true,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "toaster", "config.toml")
}

// ThemeDir returns the directory searched for user theme files.
func ThemeDir() string {
	path := ConfigPath()
	if path == "" {
		return ""
	}
	return filepath.Join(filepath.Dir(path), "themes")
}

// Load loads configuration from the specified path. If path is empty, the
// default config path is used. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Overlay file contents onto the defaults
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the specified path, creating parent
// directories if needed. The write is atomic via a temp file.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return os.Rename(tmpPath, path)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	validPos := false
	for _, p := range ValidPositions() {
		if c.Surface.Position == string(p) {
			validPos = true
			break
		}
	}
	if !validPos {
		return fmt.Errorf("invalid position %q, must be one of: %v", c.Surface.Position, ValidPositions())
	}

	if c.Surface.DefaultDuration.Duration() <= 0 {
		return fmt.Errorf("default_duration must be greater than 0, got %s", c.Surface.DefaultDuration.Duration())
	}
	if c.Surface.MaxVisible < 1 || c.Surface.MaxVisible > 20 {
		return fmt.Errorf("max_visible must be between 1 and 20, got %d", c.Surface.MaxVisible)
	}
	if c.Surface.Gap < 0 {
		return fmt.Errorf("gap must not be negative, got %d", c.Surface.Gap)
	}

	if c.Demo.SaveCountdownSeconds < 0 {
		return fmt.Errorf("save_countdown_seconds must not be negative, got %d", c.Demo.SaveCountdownSeconds)
	}

	return nil
}
