// Package config provides configuration management for the CLI.
package config

import (
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"bytesize/internal/errors"
	"bytesize/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Standard is the default unit standard (SI, IEC, JEDEC)
	Standard string `yaml:"standard"`

	// StrictBits rejects fractional bit quantities by default
	StrictBits bool `yaml:"strict_bits"`

	// Output contains output configuration
	Output OutputConfig `yaml:"output"`

	// Logging contains logging configuration
	Logging logging.Config `yaml:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Precision is the number of fraction digits in humanized output
	Precision int32 `yaml:"precision"`

	// Locale selects the numeral formatter (plain, comma)
	Locale string `yaml:"locale"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Standard: "SI",
		Output: OutputConfig{
			Precision: 2,
			Locale:    "plain",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads a configuration file
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Config("reading config file", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Config("parsing config file", err)
	}
	return cfg, nil
}

// DefaultPath returns the conventional config location
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bytesize.yaml")
}

var (
	mu      sync.RWMutex
	current = Default()
)

// Get returns the active configuration
func Get() Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set replaces the active configuration
func Set(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	current = cfg
}
