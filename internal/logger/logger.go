// Package logger builds the slog.Logger used by the command.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for log aggregation systems.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs.
	FormatText Format = "text"
)

// Option configures logger creation.
type Option func(*config)

type config struct {
	level  slog.Level
	format Format
	output io.Writer
	attrs  []slog.Attr
}

// WithLevel sets the minimum level.
func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat sets output format.
func WithFormat(f Format) Option {
	return func(c *config) { c.format = f }
}

// WithOutput sets the destination, ignoring nil writers.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) { c.attrs = append(c.attrs, attrs...) }
}

// New creates a logger. Defaults: text format, info level, stderr.
func New(opts ...Option) *slog.Logger {
	c := &config{level: slog.LevelInfo, format: FormatText, output: os.Stderr}
	for _, opt := range opts {
		opt(c)
	}
	hopts := &slog.HandlerOptions{Level: c.level}
	var h slog.Handler
	if c.format == FormatJSON {
		h = slog.NewJSONHandler(c.output, hopts)
	} else {
		h = slog.NewTextHandler(c.output, hopts)
	}
	if len(c.attrs) > 0 {
		h = h.WithAttrs(c.attrs)
	}
	return slog.New(h)
}

// ParseLevel converts a level name (debug, info, warn, error) into slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return l, nil
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("invalid log format %q: must be %q or %q", s, FormatJSON, FormatText)
	}
}
