package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the debugger settings that can be kept in a YAML file.
type Config struct {
	MaxDepth int    `yaml:"max_depth"` // call depth that aborts the run
	Prompt   string `yaml:"prompt"`    // shown before each command on a terminal
	Verbose  bool   `yaml:"verbose"`   // debug logging and function listing
	NoColor  bool   `yaml:"no_color"`  // plain diagnostics
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		MaxDepth: 10000,
		Prompt:   "(guu) ",
	}
}

// Load reads a YAML config file on top of the defaults. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Decode(file, path)
}

// Decode parses a YAML config from r; name is used in error messages
func Decode(r io.Reader, name string) (*Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", name, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", name, err)
	}

	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive, got %d", c.MaxDepth)
	}
	return nil
}
