package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amonks/skid/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skid.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_NotFound(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg == nil {
		t.Fatal("expected non-nil config")
	}

	if cfg.Storage.DataFile != "" {
		t.Error("expected empty DataFile")
	}

	if cfg.Display.Color != "" {
		t.Error("expected empty Color")
	}
}

func TestLoad_Full(t *testing.T) {
	path := writeConfig(t, `
[storage]
data-file = "  /home/kyle/classes  "

[display]
color = "never"
default-sort = "name"
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Storage.DataFile != "/home/kyle/classes" {
		t.Errorf("expected trimmed data file, got %q", cfg.Storage.DataFile)
	}

	if cfg.Display.Color != "never" {
		t.Errorf("expected color never, got %q", cfg.Display.Color)
	}

	if cfg.Display.DefaultSort != "name" {
		t.Errorf("expected default sort name, got %q", cfg.Display.DefaultSort)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := writeConfig(t, "[storage\ndata-file = ")

	if _, err := config.Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_UnknownKey(t *testing.T) {
	path := writeConfig(t, "[display]\ncolour = \"never\"\n")

	_, err := config.Load(path)
	if err == nil {
		t.Fatal("expected unknown key error")
	}
	if !strings.Contains(err.Error(), "display.colour") {
		t.Fatalf("expected error to name the key, got %v", err)
	}
}

func TestMerge_FlagsOverrideFile(t *testing.T) {
	cfg := &config.Config{
		Storage: config.Storage{DataFile: "/from/file"},
		Display: config.Display{Color: "always", DefaultSort: "id"},
	}

	merged := config.Merge(cfg, config.Overrides{DataFile: "/from/flag"})

	if merged.Storage.DataFile != "/from/flag" {
		t.Errorf("expected flag data file, got %q", merged.Storage.DataFile)
	}
	if merged.Display.Color != "always" {
		t.Errorf("expected file color kept, got %q", merged.Display.Color)
	}
	if merged.Display.DefaultSort != "id" {
		t.Errorf("expected default sort kept, got %q", merged.Display.DefaultSort)
	}
	if cfg.Storage.DataFile != "/from/file" {
		t.Error("expected input config untouched")
	}
}

func TestMerge_NilConfig(t *testing.T) {
	merged := config.Merge(nil, config.Overrides{Color: " never "})

	if merged.Display.Color != "never" {
		t.Errorf("expected trimmed color override, got %q", merged.Display.Color)
	}
}
