package config

import (
	"os"
	"path/filepath"
)

// AppName names the per-user config directory.
const AppName = "tstat"

const configFile = "config.toml"

// XDGConfigHome returns $XDG_CONFIG_HOME, falling back to ~/.config, or "." without a home.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// Dir returns the tstat directory under the XDG config home.
func Dir() string {
	return filepath.Join(XDGConfigHome(), AppName)
}

// DefaultConfigPath returns the config file used when --config is not given.
func DefaultConfigPath() string {
	return filepath.Join(Dir(), configFile)
}
