// Package config handles loading the skid.toml settings file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the skid.toml settings file.
type Config struct {
	Storage Storage `toml:"storage"`
	Display Display `toml:"display"`
}

// Storage contains settings for the class document.
type Storage struct {
	// DataFile is the path of the class document.
	// Defaults to <user config dir>/skid.
	DataFile string `toml:"data-file"`
}

// Display contains output settings.
type Display struct {
	// Color is auto, always or never. Defaults to auto.
	Color string `toml:"color"`

	// DefaultSort is the order used by a bare `list`: id, name or period.
	// Defaults to period.
	DefaultSort string `toml:"default-sort"`
}

// Overrides holds values set on the command line. Empty fields keep the file value.
type Overrides struct {
	DataFile string
	Color    string
}

// Load reads settings from path. A missing file yields an empty config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return nil, fmt.Errorf("parse config file %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	cfg.Storage.DataFile = strings.TrimSpace(cfg.Storage.DataFile)
	cfg.Display.Color = strings.TrimSpace(cfg.Display.Color)
	cfg.Display.DefaultSort = strings.TrimSpace(cfg.Display.DefaultSort)
	return &cfg, nil
}

// Merge returns cfg with any non-empty overrides applied.
func Merge(cfg *Config, overrides Overrides) *Config {
	if cfg == nil {
		cfg = &Config{}
	}
	merged := *cfg
	merged.Storage.DataFile = mergeString(overrides.DataFile, cfg.Storage.DataFile)
	merged.Display.Color = mergeString(overrides.Color, cfg.Display.Color)
	return &merged
}

func mergeString(flagValue, fileValue string) string {
	if value := strings.TrimSpace(flagValue); value != "" {
		return value
	}
	return fileValue
}
