package config

import (
	"os"
	"path/filepath"
)

// Paths provides all apiforge-related filesystem paths.
type Paths struct {
	ConfigDir  string // ~/.config/apiforge
	ConfigFile string // ~/.config/apiforge/config.yaml
}

// NewPaths creates Paths using the ~/.config directory.
// We use this path explicitly for cross-platform consistency rather than
// platform-specific defaults (like ~/Library/Application Support on macOS).
func NewPaths() *Paths {
	home := os.Getenv("HOME")
	configDir := filepath.Join(home, ".config", "apiforge")

	return &Paths{
		ConfigDir:  configDir,
		ConfigFile: filepath.Join(configDir, "config.yaml"),
	}
}

// NewPathsWithOverrides allows overriding the config directory for testing.
func NewPathsWithOverrides(configDir string) *Paths {
	return &Paths{
		ConfigDir:  configDir,
		ConfigFile: filepath.Join(configDir, "config.yaml"),
	}
}
