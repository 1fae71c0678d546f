// Package config loads cmd/qbfmt's optional settings file and layers
// command-line flag overrides on top of it: the file supplies defaults,
// flags explicitly set on the command line win.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings cmd/qbfmt needs beyond what is supplied inline
// in a single compile request: a fallback dialect and output mode for
// requests that don't specify one.
type Config struct {
	DefaultDialect string `yaml:"default_dialect"`
	Inline         bool   `yaml:"inline"`
}

// Default returns the built-in configuration used when no file is present.
func Default() *Config {
	return &Config{DefaultDialect: "postgres", Inline: false}
}

// Load reads a YAML config file at path, returning Default() unchanged if
// path is empty or the file does not exist.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
