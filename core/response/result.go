package response

import "iter"

// Header is a single response header pair. Duplicate names are permitted
// except where normalization enforces uniqueness (Content-Type and the
// session cookie).
type Header struct {
	Name  string
	Value string
}

// shape tags the three accepted handler return forms.
type shape int

const (
	shapeBody shape = iota
	shapeStatusBody
	shapeStatusBodyHeaders
)

// Result is a handler's return value before normalization: a body, an
// optional status, and optional extra headers. Construct it with Body,
// StatusBody, or StatusBodyHeaders; the zero value is not valid.
//
// The body value must be a string, a []byte, or an iter.Seq[[]byte]. The
// sequence form is forwarded to the client chunk by chunk without
// buffering; it is consumed exactly once, in order, and is not restartable.
type Result struct {
	shape   shape
	status  int
	body    any
	headers []Header
}

// Body wraps a bare body value; the status defaults to 200.
func Body(body any) Result {
	return Result{shape: shapeBody, body: body}
}

// StatusBody wraps a status code and a body value.
func StatusBody(status int, body any) Result {
	return Result{shape: shapeStatusBody, status: status, body: body}
}

// StatusBodyHeaders wraps a status code, a body value, and handler-declared
// headers.
func StatusBodyHeaders(status int, body any, headers []Header) Result {
	return Result{shape: shapeStatusBodyHeaders, status: status, body: body, headers: headers}
}

// Chunks builds a streaming body from a finite chunk producer. It exists so
// handlers can return lazily generated bodies without importing iter:
//
//	return response.Body(response.Chunks(func(yield func([]byte) bool) {
//		for _, line := range lines {
//			if !yield([]byte(line)) {
//				return
//			}
//		}
//	}))
func Chunks(seq iter.Seq[[]byte]) iter.Seq[[]byte] {
	return seq
}

// Redirect produces the framework's client-side redirect: a 302 whose HTML
// body carries a zero-delay meta refresh to location.
func Redirect(location string) Result {
	return StatusBody(302,
		"<html><head>"+
			"<meta http-equiv='refresh' content='0;url="+location+"'>"+
			"</head></html>")
}
