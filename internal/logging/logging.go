// Package logging builds structured slog loggers from adapter
// configuration.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Level names accepted in configuration.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Format names accepted in configuration.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Config holds logger construction settings.
type Config struct {
	Level  Level
	Format Format

	// Output receives log lines. Nil means os.Stderr, which keeps
	// stdout free for the stdio MCP transport.
	Output io.Writer
}

// New builds a slog.Logger from the configuration. Unknown levels fall
// back to info, unknown formats to text.
func New(cfg Config) *slog.Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	switch cfg.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler)
}

func parseLevel(l Level) slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
