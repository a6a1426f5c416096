package response

import "errors"

// ErrInvalidBody is returned when a handler result carries a body value of
// an unsupported type. The dispatcher surfaces it as a 500.
var ErrInvalidBody = errors.New("invalid response body type")
