package config

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Save writes cfg as TOML, creating directories as needed, and returns the
// resolved path. The output loads back into an equal Config.
func Save(path string, cfg Config) (string, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}

	bytes, err := toml.Marshal(cfg.raw())
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return resolved, nil
}

func (c Config) raw() rawConfig {
	return rawConfig{
		Theme:         c.Theme,
		Color:         string(c.Color),
		FallbackWidth: c.FallbackWidth,
		ADBPath:       c.ADBPath,
		LogcatArgs:    c.LogcatArgs,
		Unmatched:     c.Unmatched,
		MinLevel:      c.MinLevel.String(),
		LogLevel:      c.LogLevel,
		TagPalette:    c.TagPalette,
		Columns: rawColumns{
			Timestamp: c.Columns.Timestamp,
			PID:       c.Columns.PID,
			Tag:       c.Columns.Tag,
			Level:     c.Columns.Level,
		},
	}
}
