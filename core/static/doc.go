// Package static delivers file bytes from a sandboxed directory root.
//
// It is a collaborator of the request core, not part of it: the dispatcher
// never serves files itself, application handlers call Serve explicitly and
// return its result. Traversal outside the root yields 403, anything that
// is not a regular file yields 404.
package static
