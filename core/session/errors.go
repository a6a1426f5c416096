package session

import "errors"

// ErrTokenGeneration is returned when the system entropy source fails while
// allocating a new session token.
var ErrTokenGeneration = errors.New("failed to generate session token")
