// Package config resolves the default configuration file location for
// the CLI. The core module itself persists nothing (spec's Non-goals
// rule out any cache or state file); this package only locates the
// user's keymapper.conf when no path is given on the command line.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirPermissions is the permission mode used when creating ConfigDir.
const DirPermissions = 0755

var (
	// ConfigDir is $XDG_CONFIG_HOME/keymapper, falling back to
	// ~/.config/keymapper.
	ConfigDir string

	// DefaultConfigPath is ConfigDir/keymapper.conf.
	DefaultConfigPath string
)

// Initialize resolves ConfigDir and DefaultConfigPath and makes sure
// ConfigDir exists, so a user can drop a keymapper.conf into it without
// creating the directory by hand first.
func Initialize() error {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}

	ConfigDir = filepath.Join(base, "keymapper")
	DefaultConfigPath = filepath.Join(ConfigDir, "keymapper.conf")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", ConfigDir, err)
	}
	return nil
}

// Resolve returns the config path to use: explicit (from a CLI argument)
// if given, otherwise DefaultConfigPath if it exists on disk.
func Resolve(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if DefaultConfigPath == "" {
		return "", fmt.Errorf("config not initialized")
	}
	if _, err := os.Stat(DefaultConfigPath); err != nil {
		return "", fmt.Errorf("no config file given and none found at %s", DefaultConfigPath)
	}
	return DefaultConfigPath, nil
}
