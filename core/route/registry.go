package route

import (
	"fmt"
	"strings"
)

// FallbackName is the handler that catches requests whose first path
// segment names no registered handler, and the handler for the empty path.
const FallbackName = "index"

// Registry maps route names to handlers. Registration happens at startup
// and is not synchronized; lookups at request time are read-only.
type Registry struct {
	handlers map[string]*Handler
}

// NewRegistry creates an empty handler registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]*Handler)}
}

// Register adds a handler under name. Registering a duplicate name panics:
// it is a programming error, caught at startup.
func (r *Registry) Register(name string, fn Func, params ...Param) {
	if name == "" {
		panic("route: empty handler name")
	}
	if fn == nil {
		panic(fmt.Sprintf("route: nil handler func for %q", name))
	}
	if _, exists := r.handlers[name]; exists {
		panic(fmt.Sprintf("route: duplicate handler %q", name))
	}
	r.handlers[name] = &Handler{Name: name, Params: params, Fn: fn}
}

// Lookup returns the handler registered under name.
func (r *Registry) Lookup(name string) (*Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Resolve maps a request path to a handler and the positional parameters
// left over after handler selection. The first path segment selects the
// handler; an empty path selects the fallback. When the first segment names
// no handler, the fallback catches the request and the entire segment
// sequence becomes its positional parameters. ErrRouteNotFound is returned
// only when not even the fallback is registered.
func (r *Registry) Resolve(path string) (*Handler, []string, error) {
	segments := SplitPath(path)

	if len(segments) == 0 {
		if h, ok := r.handlers[FallbackName]; ok {
			return h, nil, nil
		}
		return nil, nil, ErrRouteNotFound
	}

	if h, ok := r.handlers[segments[0]]; ok {
		return h, segments[1:], nil
	}
	if h, ok := r.handlers[FallbackName]; ok {
		return h, segments, nil
	}
	return nil, nil, ErrRouteNotFound
}

// SplitPath breaks a request path into its segments, discarding the empty
// segments produced by leading slashes.
func SplitPath(path string) []string {
	path = strings.TrimLeft(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
