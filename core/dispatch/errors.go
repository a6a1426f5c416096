package dispatch

import "fmt"

// panicError wraps a recovered handler panic with its stack trace so the
// failure can be logged with full detail while the client sees an opaque
// 500.
type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

// Unwrap allows errors.Is/As to reach a panicked error value.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
