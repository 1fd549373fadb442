// Package config persists user preferences, currently just the default
// package manager used when a project has no lockfile.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/fbkclanna/jspkg/internal/pm"
)

// Config holds the persisted user preferences.
type Config struct {
	Manager string `yaml:"manager,omitempty"`
}

// Path returns the config file location under the user config directory.
func Path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config directory: %w", err)
	}
	return filepath.Join(base, "jspkg", "config.yaml"), nil
}

// Load reads the config file at path. A missing file yields a zero
// Config, not an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the user config file
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	return &cfg, nil
}

// Save writes the config file, creating parent directories as needed.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // config needs to be readable
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// DefaultManager returns the configured manager, or pm.Default when the
// config is empty or holds an unknown name.
func (c *Config) DefaultManager() pm.Manager {
	if c.Manager == "" {
		return pm.Default
	}
	m, err := pm.Parse(c.Manager)
	if err != nil {
		return pm.Default
	}
	return m
}
