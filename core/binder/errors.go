package binder

import "fmt"

// MissingParameterError reports a required handler parameter no request
// source could supply. The dispatcher turns it into a 400 naming the
// parameter.
type MissingParameterError struct {
	Name string
}

func (e MissingParameterError) Error() string {
	return fmt.Sprintf("missing required parameter %q", e.Name)
}
