package session_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waferhq/wafer/core/session"
)

func TestResolveCreatesSession(t *testing.T) {
	t.Parallel()

	store := session.NewStore()

	sess, created, err := store.Resolve("")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, sess.Token())
	assert.Equal(t, 1, store.Len())
}

func TestResolveRoundTrip(t *testing.T) {
	t.Parallel()

	store := session.NewStore()

	first, created, err := store.Resolve("")
	require.NoError(t, err)
	require.True(t, created)
	first.Set("user", "alice")

	second, created, err := store.Resolve(first.Token())
	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, first, second)
	assert.Equal(t, "alice", second.Get("user"))
}

func TestResolveUnknownTokenAllocatesFresh(t *testing.T) {
	t.Parallel()

	store := session.NewStore()

	sess, created, err := store.Resolve("forged-token")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, "forged-token", sess.Token())
}

func TestTokensAreUnique(t *testing.T) {
	t.Parallel()

	store := session.NewStore()
	seen := make(map[string]bool)
	for range 100 {
		sess, _, err := store.Resolve("")
		require.NoError(t, err)
		assert.False(t, seen[sess.Token()])
		seen[sess.Token()] = true
	}
}

func TestSweep(t *testing.T) {
	t.Parallel()

	now := time.Now()
	clock := now
	store := session.NewStore(
		session.WithTTL(time.Hour),
		session.WithClock(func() time.Time { return clock }),
	)

	stale, _, err := store.Resolve("")
	require.NoError(t, err)

	clock = now.Add(50 * time.Minute)
	young, _, err := store.Resolve("")
	require.NoError(t, err)

	store.Sweep(now.Add(time.Hour))
	assert.Equal(t, 1, store.Len())

	_, created, err := store.Resolve(young.Token())
	require.NoError(t, err)
	assert.False(t, created, "young session must survive the sweep")

	_, created, err = store.Resolve(stale.Token())
	require.NoError(t, err)
	assert.True(t, created, "stale session must be evicted")
}

func TestSweepBoundaryIsInclusive(t *testing.T) {
	t.Parallel()

	now := time.Now()
	store := session.NewStore(
		session.WithTTL(time.Hour),
		session.WithClock(func() time.Time { return now }),
	)

	_, _, err := store.Resolve("")
	require.NoError(t, err)

	// last-access + ttl == now evicts.
	store.Sweep(now.Add(time.Hour))
	assert.Equal(t, 0, store.Len())
}

func TestConcurrentResolveAndSweep(t *testing.T) {
	t.Parallel()

	store := session.NewStore(session.WithTTL(time.Nanosecond))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for range 100 {
				_, _, err := store.Resolve("")
				assert.NoError(t, err)
			}
		}()
		go func() {
			defer wg.Done()
			for range 100 {
				store.Sweep(time.Now())
			}
		}()
	}
	wg.Wait()
}

func TestNewStoreFromConfig(t *testing.T) {
	t.Parallel()

	now := time.Now()
	store := session.NewStoreFromConfig(
		session.Config{TTL: time.Minute},
		session.WithClock(func() time.Time { return now }),
	)

	_, _, err := store.Resolve("")
	require.NoError(t, err)

	store.Sweep(now.Add(2 * time.Minute))
	assert.Equal(t, 0, store.Len())
}
