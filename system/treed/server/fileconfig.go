package server

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config represents the treed server configuration file structure.
type Config struct {
	// Addr is the TCP listen address. Can be overridden by CLI flag.
	Addr string `yaml:"addr"`
}

func DefaultConfig() *Config {
	return &Config{
		Addr: "localhost:9321",
	}
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
