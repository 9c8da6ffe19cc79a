package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const statsKey = "streamdesk:stats:overview"

// ErrCacheMiss is returned when no cached snapshot exists.
var ErrCacheMiss = errors.New("stats cache miss")

// StatsCache holds the most recent statistics snapshot in Redis. Every
// aggregate is recomputed over full tables, so a short TTL keeps the
// overview screen cheap without making it stale enough to matter.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache creates a StatsCache with the given TTL.
// A nil client disables caching; Get always misses and Set is a no-op.
func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{client: client, ttl: ttl}
}

// Get retrieves the cached snapshot into dest.
func (c *StatsCache) Get(ctx context.Context, dest any) error {
	if c.client == nil {
		return ErrCacheMiss
	}

	data, err := c.client.Get(ctx, statsKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return fmt.Errorf("failed to read stats cache: %w", err)
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("failed to unmarshal cached stats: %w", err)
	}

	return nil
}

// Set stores the snapshot with the configured TTL.
func (c *StatsCache) Set(ctx context.Context, snapshot any) error {
	if c.client == nil {
		return nil
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal stats snapshot: %w", err)
	}

	if err := c.client.Set(ctx, statsKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write stats cache: %w", err)
	}

	return nil
}

// Invalidate drops the cached snapshot. Called after payment approval so
// revenue figures refresh immediately.
func (c *StatsCache) Invalidate(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, statsKey).Err()
}
