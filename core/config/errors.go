package config

import "errors"

var (
	// ErrNilConfig is returned when Load receives a nil pointer.
	ErrNilConfig = errors.New("config: nil config pointer")
	// ErrParseFailed wraps environment parsing failures.
	ErrParseFailed = errors.New("config: failed to parse environment")
)
