package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/angeil/essentials/operator"
)

// Config holds the runner settings loadable from a YAML file. Flags
// override nothing here; the file covers the knobs flags don't.
type Config struct {
	// Lanes is the worker count per operator call; 0 means one per CPU.
	Lanes int `yaml:"lanes"`

	// Balancer selects the load-balancing strategy: "merge-path" or
	// "per-element".
	Balancer string `yaml:"balancer"`

	// Damping and Tolerance parameterize the pagerank run.
	Damping   float64 `yaml:"damping"`
	Tolerance float64 `yaml:"tolerance"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig selects the log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"` // trace, debug, info, warn, error
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		Lanes:     0,
		Balancer:  "merge-path",
		Damping:   0.85,
		Tolerance: 1e-6,
		Logging:   LoggingConfig{Level: "info"},
	}
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks every field against its legal range.
func (c *Config) Validate() error {
	if c.Lanes < 0 {
		return fmt.Errorf("invalid lanes: %d", c.Lanes)
	}
	switch c.Balancer {
	case "merge-path", "per-element":
	default:
		return fmt.Errorf("invalid balancer: %q", c.Balancer)
	}
	if c.Damping < 0 || c.Damping >= 1 {
		return fmt.Errorf("invalid damping: %g", c.Damping)
	}
	if c.Tolerance <= 0 {
		return fmt.Errorf("invalid tolerance: %g", c.Tolerance)
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Logging.Level, err)
	}
	return nil
}

// balancer maps the config name onto a strategy value.
func (c *Config) balancer() operator.Balancer {
	if c.Balancer == "per-element" {
		return operator.PerElement{}
	}
	return operator.MergePath{}
}

// level returns the parsed zerolog level; Validate has already vetted it.
func (c *Config) level() zerolog.Level {
	lvl, _ := zerolog.ParseLevel(c.Logging.Level)
	return lvl
}
