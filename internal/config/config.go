package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileName is the config file looked up inside Dir().
const fileName = "config.yaml"

// DefaultTopK is the result limit used when neither the config file nor a
// flag supplies one.
const DefaultTopK = 3

// Config holds the user-tunable settings.
type Config struct {
	// KB is a path to a knowledge-base document overriding the builtin.
	KB string `yaml:"kb"`
	// TopK is the default search result limit.
	TopK int `yaml:"top_k"`
	// Color is the output color mode: auto, always, or never.
	Color string `yaml:"color"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{TopK: DefaultTopK, Color: "auto"}
}

// Load reads config.yaml from the config directory.
// A missing file yields the defaults; a malformed file is an error.
// Unset fields fall back to their default values.
func Load() (Config, error) {
	dir := Dir()
	if dir == "" {
		return Default(), nil
	}
	return loadFrom(filepath.Join(dir, fileName))
}

// loadFrom reads and validates a config file at an explicit path.
func loadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.TopK <= 0 {
		cfg.TopK = DefaultTopK
	}
	if cfg.Color == "" {
		cfg.Color = "auto"
	}
	return cfg, nil
}
