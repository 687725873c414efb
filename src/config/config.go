// Package config loads vigil's YAML configuration. Every section has
// working defaults so the CLI runs without a config file at all.
package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".vigil.yml"

// Config is the top-level vigil configuration.
type Config struct {
	API    APIConfig    `yaml:"api"`
	Org    string       `yaml:"org"`
	Scan   ScanConfig   `yaml:"scan"`
	Badge  BadgeConfig  `yaml:"badge"`
	SEA    SEAConfig    `yaml:"sea"`
	Models ModelsConfig `yaml:"models"`
}

// Load reads configuration from a YAML file.
// If path is empty, it tries the default file.
// Returns sensible defaults if the file doesn't exist.
func Load(path string) (*Config, error) {
	if path == "" {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaults(), nil
		}
		return nil, err
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		API:    DefaultAPIConfig(),
		Scan:   DefaultScanConfig(),
		Badge:  DefaultBadgeConfig(),
		SEA:    DefaultSEAConfig(),
		Models: DefaultModelsConfig(),
	}
}
