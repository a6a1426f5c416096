package session

import "time"

// DefaultTTL is the idle timeout after which a session is eligible for
// eviction.
const DefaultTTL = 8 * time.Hour

// Config holds session store configuration with environment variable support.
type Config struct {
	TTL           time.Duration `env:"SESSION_TTL" envDefault:"8h"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`
}

type config struct {
	TTL time.Duration
	now func() time.Time
}

func defaultConfig() *config {
	return &config{
		TTL: DefaultTTL,
		now: time.Now,
	}
}

// Option is a functional option for configuring the session store.
type Option func(*config)

// WithTTL sets the session idle timeout.
func WithTTL(ttl time.Duration) Option {
	return func(c *config) {
		if ttl > 0 {
			c.TTL = ttl
		}
	}
}

// WithClock overrides the time source, primarily for tests.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}
