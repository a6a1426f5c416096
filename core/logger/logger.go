package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

type options struct {
	writer      io.Writer
	level       slog.Leveler
	development bool
	app         string
}

// Option configures the logger factory.
type Option func(*options)

// WithLevel sets the minimum log level.
func WithLevel(level slog.Leveler) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithWriter redirects log output, primarily for tests.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.writer = w
		}
	}
}

// WithDevelopment switches to a colorized human-readable handler.
func WithDevelopment() Option {
	return func(o *options) {
		o.development = true
	}
}

// WithApp attaches an app attribute to every record.
func WithApp(name string) Option {
	return func(o *options) {
		o.app = name
	}
}

// New creates a structured logger. Production output is JSON on stderr;
// development output uses a tinted text handler.
func New(opts ...Option) *slog.Logger {
	o := &options{
		writer: os.Stderr,
		level:  slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(o)
	}

	var h slog.Handler
	if o.development {
		h = tint.NewHandler(o.writer, &tint.Options{
			Level:      o.level,
			TimeFormat: time.TimeOnly,
		})
	} else {
		h = slog.NewJSONHandler(o.writer, &slog.HandlerOptions{Level: o.level})
	}

	log := slog.New(h)
	if o.app != "" {
		log = log.With(slog.String("app", o.app))
	}
	return log
}

// Discard returns a logger that drops every record. Useful as a default in
// components that treat logging as optional.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
