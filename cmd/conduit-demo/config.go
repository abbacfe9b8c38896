package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the demo settings.
type Config struct {
	// Verbose enables delivery tracing to the log file.
	Verbose bool `toml:"verbose"`

	// LogFile receives tracing output; the screen belongs to tcell.
	LogFile string `toml:"log_file"`

	// TickMS is the simulated duration of one work step.
	TickMS int `toml:"tick_ms"`

	// Steps is the number of work steps per task run.
	Steps int `toml:"steps"`
}

// DefaultConfig returns the demo defaults.
func DefaultConfig() Config {
	return Config{
		Verbose: true,
		LogFile: "conduit-demo.log",
		TickMS:  200,
		Steps:   25,
	}
}

// LoadConfig reads a TOML config from path, falling back to defaults
// when the file does not exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}
