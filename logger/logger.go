// Package logger configures zerolog for the CLI.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var base = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Setup configures the shared logger.
//   - level: trace, debug, info, warn, error, fatal, panic (unknown falls back to info)
//   - format: "json" for machine output, "pretty" for a console writer
func Setup(w io.Writer, level, format string) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	if format == "pretty" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	base = zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return base
}

// New returns a logger tagged with the given component.
func New(component string) zerolog.Logger {
	return base.With().Str("component", component).Logger()
}
