// Package config resolves host configuration for the warden engine.
//
// The engine core never reads the host config file itself; it consumes
// resolved values (currently just the reference definitions path) from
// this package.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/warden/internal/refconf"
)

// Config holds the host-level settings of the engine. The zero value is
// usable: every accessor falls back to its compiled-in default.
type Config struct {
	// ReferenceConfigFile overrides the path of the reference
	// definitions file. Empty means the compiled-in default.
	ReferenceConfigFile string `yaml:"reference-config-file"`
}

// Load reads and parses a YAML host config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading host config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing host config %q: %w", path, err)
	}
	return &cfg, nil
}

// ReferencePath returns the reference definitions file path: the
// configured override if set, otherwise refconf.DefaultPath.
func (c *Config) ReferencePath() string {
	if c.ReferenceConfigFile != "" {
		return c.ReferenceConfigFile
	}
	return refconf.DefaultPath
}
