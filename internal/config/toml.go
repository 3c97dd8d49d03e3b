// Package config provides configuration helpers and TOML/YAML parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileConfig represents the configuration file.
type FileConfig struct {
	Analysis AnalysisConfig `toml:"analysis" yaml:"analysis"`
	Report   ReportConfig   `toml:"report" yaml:"report"`
}

// AnalysisConfig maps tokenization and store settings.
type AnalysisConfig struct {
	Buckets       *int    `toml:"buckets" yaml:"buckets"`
	MaxWordLength *int    `toml:"max-word-length" yaml:"max-word-length"`
	WordPolicy    *string `toml:"word-policy" yaml:"word-policy"`
}

// ReportConfig maps report-related settings.
type ReportConfig struct {
	Format  *string `toml:"format" yaml:"format"`
	Order   *string `toml:"order" yaml:"order"`
	Top     *int    `toml:"top" yaml:"top"`
	Exclude *string `toml:"exclude" yaml:"exclude"`
	Color   *string `toml:"color" yaml:"color"`
}

// LoadConfig reads a config from the given path. Missing file is not an error.
// Files ending in .yaml or .yml are decoded as YAML, everything else as TOML.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return FileConfig{}, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
		}
	default:
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
		}
	}
	return cfg, nil
}
