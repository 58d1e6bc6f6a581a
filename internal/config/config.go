// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from human-readable strings
// like "5s" or "1m30s", or from integer milliseconds.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: must be like '5s', '1m30s' or milliseconds: %w", s, err)
	}
	*d = Duration(dur)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler; yaml.v3 does not consult
// encoding.TextUnmarshaler on its own.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// MarshalText implements encoding.TextMarshaler for TOML output.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration { return time.Duration(d) }

// Config is the simnotify configuration, loaded from
// ~/.config/simnotify/config.toml.
type Config struct {
	Panel PanelConfig `toml:"panel"`
	Theme ThemeConfig `toml:"theme"`
	Audio AudioConfig `toml:"audio"`
	Log   LogConfig   `toml:"log"`
}

// PanelConfig holds the notification panel settings.
type PanelConfig struct {
	Bounds          BoundsConfig `toml:"bounds"`
	DisplayDuration Duration     `toml:"display_duration"` // auto-hide delay after an append
	FrameInterval   Duration     `toml:"frame_interval"`   // periodic check cadence
	AlwaysVisible   bool         `toml:"always_visible"`   // start pinned
	MaxLineLength   int          `toml:"max_line_length"`  // 0 = no truncation
}

// BoundsConfig is the panel's fixed screen rectangle.
type BoundsConfig struct {
	Left   int `toml:"left"`
	Top    int `toml:"top"`
	Right  int `toml:"right"`
	Bottom int `toml:"bottom"`
}

// ThemeConfig selects the message color palette.
type ThemeConfig struct {
	Name string `toml:"name"` // built-in palette name
	Path string `toml:"path"` // optional palette TOML overriding the built-in
}

// AudioConfig controls the arrival sound cue.
type AudioConfig struct {
	Enabled   bool    `toml:"enabled"`
	SoundFile string  `toml:"sound_file"`
	Volume    float64 `toml:"volume"` // 0.0 to 1.0
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// Validation errors.
var (
	ErrInvalidVolume   = errors.New("audio volume must be within [0,1]")
	ErrInvalidLogLevel = errors.New("log level must be debug, info, warn or error")
	ErrInvalidBounds   = errors.New("panel bounds must have right > left and top > bottom")
)

// Default returns the configuration defaults.
func Default() *Config {
	return &Config{
		Panel: PanelConfig{
			Bounds:          BoundsConfig{Left: 0, Top: 200, Right: 600, Bottom: 0},
			DisplayDuration: Duration(10 * time.Second),
			FrameInterval:   Duration(500 * time.Millisecond),
			AlwaysVisible:   false,
			MaxLineLength:   0,
		},
		Theme: ThemeConfig{Name: "default"},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.8,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Path returns the config file path. Uses XDG_CONFIG_HOME if set,
// otherwise ~/.config.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "simnotify", "config.toml")
}

// Load reads the config file at path, falling back to Path() when empty.
// A missing file yields the defaults; a malformed or invalid file is an
// error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = Path()
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded configuration for nonsense values.
func (c *Config) Validate() error {
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidVolume, c.Audio.Volume)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	b := c.Panel.Bounds
	if b.Right <= b.Left || b.Top <= b.Bottom {
		return fmt.Errorf("%w: %+v", ErrInvalidBounds, b)
	}
	if c.Panel.DisplayDuration <= 0 {
		return errors.New("panel display_duration must be positive")
	}
	if c.Panel.FrameInterval <= 0 {
		return errors.New("panel frame_interval must be positive")
	}
	return nil
}

// ParseLevel converts a config level string into a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s)
	}
}
