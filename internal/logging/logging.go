// Package logging constructs the zerolog logger used across the CLI
// and server.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config controls logger construction.
type Config struct {
	// Env selects the output format: "development" uses a human
	// readable console writer, anything else emits JSON.
	Env   string
	Level string // trace, debug, info, warn, error
}

// New builds a structured logger and installs it as zerolog's global
// logger so libraries using the global pick it up too.
func New(cfg Config) zerolog.Logger {
	var w io.Writer = os.Stderr
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	logger := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
	log.Logger = logger
	return logger
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
