// Package server wraps net/http's server with graceful shutdown,
// environment-backed configuration, and lifecycle logging. The request
// core plugs in as an ordinary http.Handler.
package server
