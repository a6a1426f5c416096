package route

import "errors"

// ErrRouteNotFound is returned when neither the named handler nor the
// fallback handler is registered.
var ErrRouteNotFound = errors.New("route not found")
