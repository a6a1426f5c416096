package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"
)

// Session is server-side per-client state keyed by an opaque cookie-carried
// token. The attribute bag is shared mutable state: two in-flight requests
// carrying the same token mutate the same bag with last-write-wins semantics.
// The store's lock covers only the token-to-session map, not the bag, so
// handlers must not rely on attribute mutations being atomic across
// concurrent requests.
type Session struct {
	token      string
	values     map[string]any
	lastAccess time.Time
}

// Token returns the opaque session token carried by the cookie.
func (s *Session) Token() string {
	return s.token
}

// Get returns the attribute stored under key, or nil.
func (s *Session) Get(key string) any {
	return s.values[key]
}

// Set stores an attribute under key.
func (s *Session) Set(key string, value any) {
	s.values[key] = value
}

// Delete removes the attribute stored under key.
func (s *Session) Delete(key string) {
	delete(s.values, key)
}

// Values exposes the raw attribute bag for argument binding.
func (s *Session) Values() map[string]any {
	return s.values
}

// generateToken creates a cryptographically secure random token using
// 32 bytes (256 bits) encoded as a base64 URL-safe string without padding.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
