package session

import (
	"context"
	"sync"
	"time"
)

// Store is the process-wide session map. All structural access (insert,
// lookup, bulk-remove) goes through a single mutex; session churn is not a
// throughput bottleneck, so finer-grained locking buys nothing here.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates a session store with the given options. The default
// idle timeout is 8 hours.
func NewStore(opts ...Option) *Store {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      cfg.TTL,
		now:      cfg.now,
	}
}

// NewStoreFromConfig creates a session store from environment-backed
// configuration. Additional options override config values.
func NewStoreFromConfig(cfg Config, opts ...Option) *Store {
	base := []Option{WithTTL(cfg.TTL)}
	return NewStore(append(base, opts...)...)
}

// Resolve returns the session named by token, refreshing its last-access
// time; when the token is empty or unknown, it allocates a fresh session
// under a new random token. The boolean reports whether the session was
// newly created.
func (s *Store) Resolve(token string) (*Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != "" {
		if sess, ok := s.sessions[token]; ok {
			sess.lastAccess = s.now()
			return sess, false, nil
		}
	}

	fresh, err := generateToken()
	if err != nil {
		return nil, false, err
	}
	sess := &Session{
		token:      fresh,
		values:     make(map[string]any),
		lastAccess: s.now(),
	}
	s.sessions[fresh] = sess
	return sess, true, nil
}

// Sweep removes every session whose last access is at least the idle
// timeout ago. Safe to call concurrently with Resolve.
func (s *Store) Sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, sess := range s.sessions {
		if !sess.lastAccess.Add(s.ttl).After(now) {
			delete(s.sessions, token)
		}
	}
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// StartSweeper runs periodic eviction until ctx is done. Call it in a
// goroutine at startup.
func (s *Store) StartSweeper(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Sweep(now)
		}
	}
}
