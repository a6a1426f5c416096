// Package dispatch orchestrates the request pipeline: cookie parsing,
// session resolution, route selection, body decoding, argument binding,
// handler invocation, and response normalization, in that order. Any stage
// failure short-circuits to an error response that still carries the
// session cookie and a content type.
//
// The Dispatcher is a plain http.Handler, so the standard library's server
// acts as the transport: it delivers the buffered body chunk stream and
// accepts the response stream, including flushed chunks for streaming
// bodies.
//
// Failures never retry. A handler that blocks forever stalls only its own
// request; cancellation is the transport's job, exposed to handlers through
// the request context.
package dispatch
