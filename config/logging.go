package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// LoggingConfig selects the zerolog level and output format.
type LoggingConfig struct {
	// Level is a zerolog level name.
	Level string `json:"level"`
	// Format is "pretty" or "json".
	Format string `json:"format"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "pretty"
	}
}

// Validate checks the level and format.
func (c LoggingConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	if c.Format != "pretty" && c.Format != "json" {
		return fmt.Errorf("unknown format %s", c.Format)
	}
	return nil
}
