// Package session provides in-process session state keyed by an opaque
// random token.
//
// The store is a single map guarded by a mutex. Sessions are created on the
// first request that carries no recognized token, refreshed on every request
// that does, and evicted by a periodic sweep once idle for the configured
// timeout (8 hours by default).
//
//	store := session.NewStore(session.WithTTL(8 * time.Hour))
//	go store.StartSweeper(ctx, time.Minute)
//
//	sess, created, err := store.Resolve(tokenFromCookie)
//
// State is process-local: a multi-process deployment needs an external
// session backend, which is outside this package's scope.
package session
