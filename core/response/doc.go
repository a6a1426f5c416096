// Package response models handler return values and their normalization
// into a canonical wire-level response.
//
// Handlers return one of exactly three shapes (a bare body, a status and a
// body, or a status plus body plus extra headers) built with the Body,
// StatusBody, and StatusBodyHeaders constructors. Body values are strings,
// byte slices, or lazy chunk sequences (iter.Seq[[]byte]) for streaming.
//
// Normalize resolves the shape into a Normalized response and enforces the
// two header invariants: every response carries the session cookie and a
// Content-Type, each exactly once, regardless of what the handler supplied.
package response
