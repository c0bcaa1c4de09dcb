package cache

import (
	"context"
	"sync"
	"time"

	"github.com/actuallystonmai/jobrec/internal/widget"
)

type memoryEntry struct {
	state     widget.State
	expiresAt time.Time
}

// MemoryCache is the single-process stand-in for RedisCache.
type MemoryCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &MemoryCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (c *MemoryCache) Get(ctx context.Context, sessionID string) (widget.State, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[sessionID]
	if !ok {
		return widget.State{}, false, nil
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.entries, sessionID)
		return widget.State{}, false, nil
	}
	return e.state, true, nil
}

func (c *MemoryCache) Set(ctx context.Context, sessionID string, state widget.State) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[sessionID] = memoryEntry{state: state, expiresAt: c.now().Add(c.ttl)}
	return nil
}

func (c *MemoryCache) Delete(ctx context.Context, sessionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, sessionID)
	return nil
}

func (c *MemoryCache) Ping(ctx context.Context) error {
	return nil
}
