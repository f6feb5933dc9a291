package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds the file-level settings. Flags override file values.
type Config struct {
	// Capacity is the ring store capacity in bytes.
	Capacity int `yaml:"capacity,omitempty"`

	// LogLevel is "debug" or "info".
	LogLevel string `yaml:"log_level,omitempty"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{Capacity: 4096, LogLevel: "info"}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// resolveConfig loads the --config file if given and applies flag
// overrides.
func resolveConfig() (*Config, error) {
	cfg := DefaultConfig()
	if flagConfig != "" {
		loaded, err := LoadConfig(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if flagCap > 0 {
		cfg.Capacity = flagCap
	}
	if cfg.LogLevel == "debug" && !flagVerbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	return cfg, nil
}
