// Package config provides configuration management for the hfcache CLI.
package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Dir returns the hfcache config directory.
// Uses XDG_CONFIG_HOME/hfcache, defaulting to ~/.config/hfcache.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, "hfcache")
}

// Path returns the config file path inside Dir.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}
