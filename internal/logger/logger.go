// Package logger builds the bullets loggers used across origin-link.
//
// Logs go to stderr so that stdout only ever carries the generated link,
// which keeps `origin-link file.go | pbcopy` and similar pipelines clean.
//
// Usage:
//
//	log := logger.NewLogger("debug")
//	log.Debug("Resolving remote")
//
//	silentLog := logger.NoLogger() // Suppresses all output
package logger

import (
	"io"
	"os"

	"github.com/sgaunet/bullets"
)

// Levels accepted by [NewLogger] and the --log-level flag.
var Levels = []string{"debug", "info", "warn", "error"}

// NewLogger creates a logger writing to stderr at the given level.
// Unknown levels fall back to info.
func NewLogger(logLevel string) *bullets.Logger {
	return NewLoggerTo(os.Stderr, logLevel)
}

// NewLoggerTo creates a logger writing to w at the given level.
func NewLoggerTo(w io.Writer, logLevel string) *bullets.Logger {
	logger := bullets.New(w)
	logger.SetLevel(parseLevel(logLevel))
	return logger
}

// NoLogger creates a logger that drops everything.
func NoLogger() *bullets.Logger {
	logger := bullets.New(io.Discard)
	logger.SetLevel(bullets.FatalLevel)
	return logger
}

// IsValidLevel reports whether level is one of [Levels].
func IsValidLevel(level string) bool {
	for _, l := range Levels {
		if l == level {
			return true
		}
	}
	return false
}

func parseLevel(logLevel string) bullets.Level {
	switch logLevel {
	case "debug":
		return bullets.DebugLevel
	case "warn":
		return bullets.WarnLevel
	case "error":
		return bullets.ErrorLevel
	default:
		return bullets.InfoLevel
	}
}
