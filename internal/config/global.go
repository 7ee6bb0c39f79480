// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
)

// GlobalConfigDir returns the directory for global canopy configuration.
// It uses $XDG_CONFIG_HOME/canopy if set, otherwise ~/.config/canopy.
func GlobalConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "canopy")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "canopy")
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() string {
	return filepath.Join(GlobalConfigDir(), "config.yaml")
}
