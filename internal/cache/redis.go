package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/actuallystonmai/jobrec/internal/widget"
	"github.com/redis/go-redis/v9"
)

const defaultTTL = 30 * time.Minute

// RedisCache keeps widget session snapshots in Redis so a session can be
// picked up by another replica. Entries expire with the session.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisCache{client: client, ttl: ttl}
}

func buildKey(sessionID string) string {
	return fmt.Sprintf("jobrec:session:%s", sessionID)
}

// Get a session snapshot from cache
func (c *RedisCache) Get(ctx context.Context, sessionID string) (widget.State, bool, error) {
	key := buildKey(sessionID)
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return widget.State{}, false, nil
	}
	if err != nil {
		return widget.State{}, false, fmt.Errorf("failed to get session from cache: %w", err)
	}

	var state widget.State
	if err := json.Unmarshal(val, &state); err != nil {
		return widget.State{}, false, fmt.Errorf("failed to unmarshal session %s: %w", key, err)
	}
	return state, true, nil
}

// Store a session snapshot, refreshing its TTL
func (c *RedisCache) Set(ctx context.Context, sessionID string, state widget.State) error {
	key := buildKey(sessionID)
	val, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set session in cache: %w", err)
	}
	return nil
}

// Delete a session snapshot: used on unmount
func (c *RedisCache) Delete(ctx context.Context, sessionID string) error {
	if err := c.client.Del(ctx, buildKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("cache delete %s: %w", buildKey(sessionID), err)
	}
	return nil
}

// Ping connectivity
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
