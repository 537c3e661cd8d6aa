// Package ratelimit implements a fixed window request limiter on redis
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/kunalPisolkar24/payflow/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

// Store is the subset of redis commands the limiter needs; *redis.Client satisfies it
type Store interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	PTTL(ctx context.Context, key string) *redis.DurationCmd
}

// Decision is the limiter verdict for one request
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAfter time.Duration
}

// FixedWindowLimiter counts requests per key in windows that start at the first request
type FixedWindowLimiter struct {
	store     Store
	limit     int
	window    time.Duration
	keyPrefix string
}

// NewFixedWindowLimiter creates a limiter allowing limit requests per window
func NewFixedWindowLimiter(store Store, limit int, window time.Duration, keyPrefix string) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		store:     store,
		limit:     limit,
		window:    window,
		keyPrefix: keyPrefix,
	}
}

// NewRedisClient creates the redis client backing the limiter
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})
}

// Allow counts one request for clientKey. On a store error the returned
// decision allows the request and the error is returned for logging.
func (l *FixedWindowLimiter) Allow(ctx context.Context, clientKey string) (Decision, error) {
	key := l.keyPrefix + ":" + clientKey
	open := Decision{Allowed: true, Limit: l.limit, Remaining: l.limit, ResetAfter: l.window}

	count, err := l.store.Incr(ctx, key).Result()
	if err != nil {
		return open, fmt.Errorf("rate limit counter: %w", err)
	}

	if count == 1 {
		if err := l.store.Expire(ctx, key, l.window).Err(); err != nil {
			return open, fmt.Errorf("rate limit expiry: %w", err)
		}
	}

	ttl, err := l.store.PTTL(ctx, key).Result()
	if err != nil {
		return open, fmt.Errorf("rate limit ttl: %w", err)
	}

	// A counter without expiry would block the client forever
	if ttl < 0 {
		if err := l.store.Expire(ctx, key, l.window).Err(); err != nil {
			return open, fmt.Errorf("rate limit expiry: %w", err)
		}
		ttl = l.window
	}

	remaining := l.limit - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return Decision{
		Allowed:    count <= int64(l.limit),
		Limit:      l.limit,
		Remaining:  remaining,
		ResetAfter: ttl,
	}, nil
}
