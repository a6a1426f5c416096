package form

import "errors"

// ErrMalformedBody is returned when a multipart content type declares no
// boundary parameter, leaving the body impossible to delimit.
var ErrMalformedBody = errors.New("malformed body: no multipart boundary")
