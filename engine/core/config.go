package core

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hubastard/foam/engine/colors"
)

// Config for the engine run.
type Config struct {
	Title        string       `toml:"title"`
	Width        int          `toml:"width"`
	Height       int          `toml:"height"`
	VSync        bool         `toml:"vsync"`
	ClearColor   colors.Color `toml:"clear_color"` // RGBA
	MaxInstances int          `toml:"max_instances"`
	FontSize     float32      `toml:"font_size"`
	LogLevel     string       `toml:"log_level"`
	ProfilePath  string       `toml:"profile_path"`
}

func DefaultConfig() Config {
	return Config{
		Title:        "Foam",
		Width:        800,
		Height:       600,
		VSync:        true,
		ClearColor:   colors.Paper,
		MaxInstances: 10000,
		FontSize:     16,
		LogLevel:     "info",
	}
}

// LoadConfig overlays the TOML file at path on DefaultConfig.
// A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("load config %q: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		Logger().Warn("unknown config keys", "path", path, "keys", fmt.Sprint(undecoded))
	}
	if err := cfg.validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("load config %q: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.MaxInstances <= 0 {
		return fmt.Errorf("max_instances must be positive, got %d", c.MaxInstances)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("font_size must be positive, got %g", c.FontSize)
	}
	return nil
}

// SlogLevel maps LogLevel onto slog; unknown names fall back to info.
func (c Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
