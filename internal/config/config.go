// Package config loads the optional YAML defaults file for the CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds defaults a user can persist instead of passing flags on
// every invocation. Flags and environment variables still win.
type Config struct {
	Host  string `yaml:"host"`
	Model string `yaml:"model"`
}

// Load reads the config file at path. An empty path falls back to
// BARD_CONFIG_PATH and then to ~/.bard.yaml. A missing file is not an
// error; the zero Config is returned so resolution can fall through.
func Load(path string) (*Config, error) {
	explicit := path != ""

	if path == "" {
		path = os.Getenv("BARD_CONFIG_PATH")
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return &Config{}, nil
		}
		path = filepath.Join(home, ".bard.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return &cfg, nil
}
