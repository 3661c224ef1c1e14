// Package xdg provides helpers to resolve XDG Base Directory paths for tracectl.
// It falls back to ~/.config when XDG_CONFIG_HOME is unset and ensures the
// directory exists with private permissions.
package xdg

import (
	"os"
	"path/filepath"
)

// ConfigDir returns the XDG config directory for tracectl.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/tracectl when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	dir := filepath.Join(base, "tracectl")
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
