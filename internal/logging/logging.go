// Package logging builds the slog loggers of the command line tool.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"

	FormatText = "text"
	FormatJSON = "json"
)

// Options configures a logger.
type Options struct {
	Level string
	// Format is text or json, text when empty.
	Format    string
	Writer    io.Writer
	Component string
}

// New creates a logger. The writer defaults to stderr.
func New(opts Options) (*slog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: level}

	var h slog.Handler

	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", FormatText:
		h = slog.NewTextHandler(writer, handlerOpts)
	case FormatJSON:
		h = slog.NewJSONHandler(writer, handlerOpts)
	default:
		return nil, errors.Errorf("invalid log format %q", opts.Format)
	}

	lg := slog.New(h)
	if component := strings.TrimSpace(opts.Component); component != "" {
		lg = lg.With("component", component)
	}

	return lg, nil
}

// Configure installs a process-wide slog default logger and returns it.
func Configure(opts Options) (*slog.Logger, error) {
	lg, err := New(opts)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(lg)

	return lg, nil
}

// ParseLevel supports debug, info, warn and error. An empty level is info.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", LevelInfo:
		return slog.LevelInfo, nil
	case LevelDebug:
		return slog.LevelDebug, nil
	case LevelWarn, "warning":
		return slog.LevelWarn, nil
	case LevelError:
		return slog.LevelError, nil
	default:
		return 0, errors.Errorf("invalid log level %q", level)
	}
}
