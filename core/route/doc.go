// Package route maps request paths to named handlers.
//
// Routing is single-segment: the first path segment selects the handler by
// name, the remaining segments become positional parameters consumed during
// argument binding. A request whose first segment matches nothing falls back
// to the "index" handler with the whole segment sequence as positional
// parameters.
//
// Handlers are registered explicitly at startup together with their
// parameter declarations:
//
//	reg := route.NewRegistry()
//	reg.Register("greet", greetFn,
//		route.Required("id"),
//		route.Optional("name", "anon"),
//	)
package route
