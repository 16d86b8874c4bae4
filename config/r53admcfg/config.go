// Package r53admcfg loads the optional r53adm configuration file that
// supplies defaults for command flags.
package r53admcfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root of the r53adm configuration file.
type Config struct {
	TTL       int64  `yaml:"ttl,omitempty"`       // Default TTL for created records.
	LogFormat string `yaml:"logFormat,omitempty"` // human|text|json
	Profile   string `yaml:"profile,omitempty"`   // AWS shared-config profile.
	Region    string `yaml:"region,omitempty"`    // AWS region override.
}

// Load reads and parses the YAML configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate rejects settings no command could accept.
func (c *Config) Validate() error {
	if c.TTL < 0 {
		return fmt.Errorf("ttl must not be negative: %d", c.TTL)
	}
	switch c.LogFormat {
	case "", "human", "text", "json":
	default:
		return fmt.Errorf("unsupported log format: %s", c.LogFormat)
	}
	return nil
}
