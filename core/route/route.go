package route

import (
	"context"
	"net/url"

	"github.com/waferhq/wafer/core/form"
	"github.com/waferhq/wafer/core/response"
	"github.com/waferhq/wafer/core/session"
)

// Context is the request view handed to handlers. The concrete
// implementation lives in the dispatcher; handlers see only this interface.
type Context interface {
	context.Context

	Method() string
	Path() string
	PathParams() []string
	Query() url.Values
	Form() form.Fields
	Files() form.Files
	Session() *session.Session
}

// Func executes a handler with its bound argument list and returns the
// response to normalize. Arguments arrive in declaration order; each is a
// string (path, query, body), a form.File (upload), the raw session value,
// or the declared default, per the binding precedence.
type Func func(ctx Context, args []any) (response.Result, error)

// Param declares a single handler parameter: its name and, when present,
// its default value. Parameters without a default are required.
type Param struct {
	Name       string
	HasDefault bool
	Default    any
}

// Optional builds a parameter with a declared default.
func Optional(name string, def any) Param {
	return Param{Name: name, HasDefault: true, Default: def}
}

// Required builds a parameter without a default.
func Required(name string) Param {
	return Param{Name: name}
}

// Handler pairs a route name with its parameter declarations and
// invocation closure.
type Handler struct {
	Name   string
	Params []Param
	Fn     Func
}
