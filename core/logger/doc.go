// Package logger builds structured slog loggers with the project's two
// output profiles: JSON for production and a tinted text handler for
// development. It also ships nil-safe attribute helpers for the fields the
// dispatcher and server log on every request.
package logger
