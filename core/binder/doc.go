// Package binder assembles handler argument lists from the request's
// parameter sources.
//
// The precedence runs from the most specific signal of intent to the least:
// positional path segments first (RESTful addressing), then query, body,
// uploaded files, session attributes, and finally declared defaults. Session
// values sit just above defaults so handlers can pick up ambient per-user
// state without requiring it to be re-supplied on every request.
package binder
