// Package config handles apiforge user defaults.
package config

import (
	"os"

	"github.com/HartBrook/apiforge/internal/errors"
	"gopkg.in/yaml.v3"
)

// FeatureDefaults overrides the built-in toggle defaults.
// Pointers distinguish "not set" from an explicit false.
type FeatureDefaults struct {
	Postgres *bool `yaml:"postgres,omitempty"`
	Redis    *bool `yaml:"redis,omitempty"`
	Docker   *bool `yaml:"docker,omitempty"`
	Celery   *bool `yaml:"celery,omitempty"`
}

// Config represents the optional apiforge defaults file.
// Every field is optional; command-line flags take precedence.
type Config struct {
	Author      string          `yaml:"author,omitempty"`
	Email       string          `yaml:"email,omitempty"`
	Description string          `yaml:"description,omitempty"`
	Features    FeatureDefaults `yaml:"features,omitempty"`
}

// Load reads the defaults file from the default location.
// A missing file is not an error; it yields an empty Config.
func Load() (*Config, error) {
	paths := NewPaths()
	return LoadFrom(paths.ConfigFile)
}

// LoadFrom reads the defaults file from a specific path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, errors.Wrap(errors.ErrConfigInvalid, "failed to read defaults file", "", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrConfigInvalid, "failed to parse defaults file", "Check YAML syntax", err)
	}

	return &cfg, nil
}

// Exists checks if a defaults file exists at the default location.
func Exists() bool {
	paths := NewPaths()
	_, err := os.Stat(paths.ConfigFile)
	return err == nil
}
