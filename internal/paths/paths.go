// Package paths resolves where skid keeps its files.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DataFileName is the name of the class document inside the config directory.
	DataFileName = "skid"

	// SettingsFileName is the name of the TOML settings file inside the config directory.
	SettingsFileName = "skid.toml"
)

// ConfigDir returns the per-user configuration directory.
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get config directory: %w", err)
	}
	return dir, nil
}

// DefaultDataFile returns the default class document path.
func DefaultDataFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DataFileName), nil
}

// DefaultSettingsFile returns the default settings path.
func DefaultSettingsFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// Abs resolves path against the working directory.
func Abs(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return filepath.Join(cwd, path), nil
}
