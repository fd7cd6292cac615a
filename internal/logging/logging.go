// Package logging builds the slog logger shared by the CLI commands.
package logging

import (
	"io"
	"log/slog"
)

// Config holds logger configuration.
type Config struct {
	Level     slog.Level
	Component string
	Output    io.Writer
}

// New returns a text logger tagged with its component.
func New(cfg Config) *slog.Logger {
	h := slog.NewTextHandler(cfg.Output, &slog.HandlerOptions{Level: cfg.Level})
	logger := slog.New(h)
	if cfg.Component != "" {
		logger = logger.With("component", cfg.Component)
	}
	return logger
}

// Level maps the --verbose flag to a log level.
func Level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
