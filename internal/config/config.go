// Package config loads and stores CLI configuration in the XDG config dir.
// Only the default trace server address lives here; everything else is
// per-invocation flags.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"tracectl/cli/internal/xdg"
)

// Defaults when no config file exists and no flags are given.
const (
	DefaultIP   = "127.0.0.1"
	DefaultPort = 8080
)

// Config holds non-sensitive CLI settings.
type Config struct {
	ServerIP   string `json:"server_ip"`
	ServerPort int    `json:"server_port"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; missing file returns defaults.
func Load() (Config, error) {
	c := Config{ServerIP: DefaultIP, ServerPort: DefaultPort}
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, err
	}
	if c.ServerIP == "" {
		c.ServerIP = DefaultIP
	}
	if c.ServerPort == 0 {
		c.ServerPort = DefaultPort
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
