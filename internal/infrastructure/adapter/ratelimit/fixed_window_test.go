package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore mimics the redis commands used by the limiter
type memoryStore struct {
	counts  map[string]int64
	expiry  map[string]time.Duration
	failing error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{counts: map[string]int64{}, expiry: map[string]time.Duration{}}
}

func (s *memoryStore) Incr(_ context.Context, key string) *redis.IntCmd {
	if s.failing != nil {
		return redis.NewIntResult(0, s.failing)
	}
	s.counts[key]++
	return redis.NewIntResult(s.counts[key], nil)
}

func (s *memoryStore) Expire(_ context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	s.expiry[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func (s *memoryStore) PTTL(_ context.Context, key string) *redis.DurationCmd {
	ttl, ok := s.expiry[key]
	if !ok {
		return redis.NewDurationResult(-1, nil)
	}
	return redis.NewDurationResult(ttl, nil)
}

// expireAll simulates the window elapsing
func (s *memoryStore) expireAll() {
	s.counts = map[string]int64{}
	s.expiry = map[string]time.Duration{}
}

func TestFixedWindowLimiter(t *testing.T) {
	ctx := context.Background()

	t.Run("Allows up to the limit then rejects", func(t *testing.T) {
		store := newMemoryStore()
		limiter := NewFixedWindowLimiter(store, 10, time.Minute, "pf")

		for i := 1; i <= 10; i++ {
			decision, err := limiter.Allow(ctx, "ip:10.0.0.1")
			require.NoError(t, err)
			assert.True(t, decision.Allowed)
			assert.Equal(t, 10-i, decision.Remaining)
		}

		decision, err := limiter.Allow(ctx, "ip:10.0.0.1")
		require.NoError(t, err)
		assert.False(t, decision.Allowed)
		assert.Equal(t, 0, decision.Remaining)
		assert.Equal(t, time.Minute, decision.ResetAfter)
		assert.Equal(t, time.Minute, store.expiry["pf:ip:10.0.0.1"])

		store.expireAll()
		decision, err = limiter.Allow(ctx, "ip:10.0.0.1")
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
	})

	t.Run("Clients are counted separately", func(t *testing.T) {
		limiter := NewFixedWindowLimiter(newMemoryStore(), 1, time.Minute, "pf")

		first, err := limiter.Allow(ctx, "ip:a")
		require.NoError(t, err)
		second, err := limiter.Allow(ctx, "ip:b")
		require.NoError(t, err)

		assert.True(t, first.Allowed)
		assert.True(t, second.Allowed)
	})

	t.Run("Counter without expiry gets one", func(t *testing.T) {
		store := newMemoryStore()
		store.counts["pf:ip:c"] = 3
		limiter := NewFixedWindowLimiter(store, 10, time.Minute, "pf")

		decision, err := limiter.Allow(ctx, "ip:c")
		require.NoError(t, err)
		assert.Equal(t, time.Minute, decision.ResetAfter)
		assert.Equal(t, time.Minute, store.expiry["pf:ip:c"])
	})

	t.Run("Fails open when redis is unavailable", func(t *testing.T) {
		store := newMemoryStore()
		store.failing = errors.New("dial tcp: connection refused")
		limiter := NewFixedWindowLimiter(store, 10, time.Minute, "pf")

		decision, err := limiter.Allow(ctx, "ip:d")
		assert.Error(t, err)
		assert.True(t, decision.Allowed)
	})
}
