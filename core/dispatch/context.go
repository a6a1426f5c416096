package dispatch

import (
	"net/http"
	"net/url"
	"time"

	"github.com/waferhq/wafer/core/form"
	"github.com/waferhq/wafer/core/session"
)

// Context is the per-request view handed to handlers. It is owned by the
// dispatcher for the request's duration and implements route.Context.
// context.Context methods delegate to the request's context.
type Context struct {
	r          *http.Request
	pathParams []string
	query      url.Values
	fields     form.Fields
	files      form.Files
	sess       *session.Session
}

func newContext(r *http.Request, pathParams []string, fields form.Fields, files form.Files, sess *session.Session) *Context {
	return &Context{
		r:          r,
		pathParams: pathParams,
		query:      r.URL.Query(),
		fields:     fields,
		files:      files,
		sess:       sess,
	}
}

func (c *Context) Deadline() (time.Time, bool) { return c.r.Context().Deadline() }
func (c *Context) Done() <-chan struct{}       { return c.r.Context().Done() }
func (c *Context) Err() error                  { return c.r.Context().Err() }
func (c *Context) Value(key any) any           { return c.r.Context().Value(key) }

// Method returns the request method.
func (c *Context) Method() string {
	return c.r.Method
}

// Path returns the raw request path.
func (c *Context) Path() string {
	return c.r.URL.Path
}

// PathParams returns the path segments after the handler-selecting segment.
func (c *Context) PathParams() []string {
	return c.pathParams
}

// Query returns the decoded query parameters.
func (c *Context) Query() url.Values {
	return c.query
}

// Form returns the decoded body fields; empty for body-less methods.
func (c *Context) Form() form.Fields {
	return c.fields
}

// Files returns the uploaded files; empty for body-less methods.
func (c *Context) Files() form.Files {
	return c.files
}

// Session returns the session resolved for this request.
func (c *Context) Session() *session.Session {
	return c.sess
}
