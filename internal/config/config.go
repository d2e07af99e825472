package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/lcat/internal/logcat"
	"github.com/five82/lcat/internal/logging"
	"github.com/five82/lcat/internal/ui"
)

// Unmatched line policies.
const (
	UnmatchedDrop = "drop"
	UnmatchedPass = "pass"
)

// Columns overrides the fixed column widths.
type Columns struct {
	Timestamp int
	PID       int
	Tag       int
	Level     int
}

// Config captures lcat settings after defaults are applied.
type Config struct {
	Theme         string
	Color         ui.ColorMode
	FallbackWidth int
	ADBPath       string
	LogcatArgs    []string
	Unmatched     string
	MinLevel      logcat.Level
	LogLevel      string
	TagPalette    []string
	Columns       Columns
}

const (
	defaultConfigPath = "~/.config/lcat/config.toml"
	defaultTheme      = "Classic"
	defaultADBPath    = "adb"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Theme:         defaultTheme,
		Color:         ui.ColorAlways,
		FallbackWidth: ui.DefaultWidth,
		ADBPath:       defaultADBPath,
		LogcatArgs:    []string{"logcat", "-v", "time"},
		Unmatched:     UnmatchedDrop,
		MinLevel:      logcat.LevelVerbose,
		LogLevel:      logging.DefaultLevel,
		Columns: Columns{
			Timestamp: ui.DefaultTimestampWidth,
			PID:       ui.DefaultPIDWidth,
			Tag:       ui.DefaultTagWidth,
			Level:     ui.DefaultLevelWidth,
		},
	}
}

// Layout builds the render layout for a terminal width columns wide.
func (c Config) Layout(width int) ui.Layout {
	if width <= 0 {
		width = c.FallbackWidth
	}
	return ui.Layout{
		Width:          width,
		TimestampWidth: c.Columns.Timestamp,
		PIDWidth:       c.Columns.PID,
		TagWidth:       c.Columns.Tag,
		LevelWidth:     c.Columns.Level,
	}
}

// PassUnmatched reports whether non-record lines are written through.
func (c Config) PassUnmatched() bool {
	return c.Unmatched == UnmatchedPass
}

type rawColumns struct {
	Timestamp int `toml:"timestamp"`
	PID       int `toml:"pid"`
	Tag       int `toml:"tag"`
	Level     int `toml:"level"`
}

type rawConfig struct {
	Theme         string     `toml:"theme"`
	Color         string     `toml:"color"`
	FallbackWidth int        `toml:"fallback_width"`
	ADBPath       string     `toml:"adb_path"`
	LogcatArgs    []string   `toml:"logcat_args"`
	Unmatched     string     `toml:"unmatched"`
	MinLevel      string     `toml:"min_level"`
	LogLevel      string     `toml:"log_level"`
	TagPalette    []string   `toml:"tag_palette,omitempty"`
	Columns       rawColumns `toml:"columns"`
}

// Load locates and parses the lcat config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := raw.apply(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", resolved, err)
	}
	return cfg, nil
}

func (raw rawConfig) apply(cfg *Config) error {
	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		cfg.Theme = theme
	}

	mode, err := ui.ParseColorMode(raw.Color)
	if err != nil {
		return err
	}
	cfg.Color = mode

	if raw.FallbackWidth < 0 {
		return fmt.Errorf("fallback_width must be positive, got %d", raw.FallbackWidth)
	}
	if raw.FallbackWidth > 0 {
		cfg.FallbackWidth = raw.FallbackWidth
	}

	if adb := strings.TrimSpace(raw.ADBPath); adb != "" {
		cfg.ADBPath = mustExpand(adb)
	}
	if args := filterStrings(raw.LogcatArgs); len(args) > 0 {
		cfg.LogcatArgs = args
	}

	if policy := strings.ToLower(strings.TrimSpace(raw.Unmatched)); policy != "" {
		if policy != UnmatchedDrop && policy != UnmatchedPass {
			return fmt.Errorf("unmatched must be %q or %q, got %q", UnmatchedDrop, UnmatchedPass, raw.Unmatched)
		}
		cfg.Unmatched = policy
	}

	if strings.TrimSpace(raw.MinLevel) != "" {
		level, err := logcat.ParseLevel(raw.MinLevel)
		if err != nil {
			return err
		}
		cfg.MinLevel = level
	}

	if strings.TrimSpace(raw.LogLevel) != "" {
		if _, err := logging.ParseLevel(raw.LogLevel); err != nil {
			return err
		}
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(raw.LogLevel))
	}

	cfg.TagPalette = filterStrings(raw.TagPalette)

	for _, col := range []struct {
		name string
		val  int
		dst  *int
	}{
		{"columns.timestamp", raw.Columns.Timestamp, &cfg.Columns.Timestamp},
		{"columns.pid", raw.Columns.PID, &cfg.Columns.PID},
		{"columns.tag", raw.Columns.Tag, &cfg.Columns.Tag},
		{"columns.level", raw.Columns.Level, &cfg.Columns.Level},
	} {
		if col.val < 0 {
			return fmt.Errorf("%s must be positive, got %d", col.name, col.val)
		}
		if col.val > 0 {
			*col.dst = col.val
		}
	}
	return nil
}

func filterStrings(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
