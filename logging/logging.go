// Package logging configures the process-wide structured logger.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Config holds logger configuration.
type Config struct {
	Level   string
	Service string
	Output  io.Writer
}

// New builds a JSON logger tagged with the service name. Level is one of
// debug/info/warn/error; anything else falls back to info. A nil Output
// defaults to stdout.
func New(config Config) *slog.Logger {
	level := slog.LevelInfo
	switch config.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	output := config.Output
	if output == nil {
		output = os.Stdout
	}

	handler := slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("service", config.Service)
}
