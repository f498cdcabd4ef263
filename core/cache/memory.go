package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"pickup/core/constants"
)

type memoryItem struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache backs tests and single-process runs without redis.
type MemoryCache struct {
	mu    sync.Mutex
	items map[string]memoryItem
	now   func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{items: map[string]memoryItem{}, now: time.Now}
}

func (c *MemoryCache) get(key string) ([]byte, bool) {
	item, ok := c.items[key]
	if !ok {
		return nil, false
	}
	if !item.expiresAt.IsZero() && c.now().After(item.expiresAt) {
		delete(c.items, key)
		return nil, false
	}
	return item.value, true
}

func (c *MemoryCache) set(key string, value []byte, ttl time.Duration) {
	item := memoryItem{value: value}
	if ttl > 0 {
		item.expiresAt = c.now().Add(ttl)
	}
	c.items[key] = item
}

func (c *MemoryCache) GetJSON(_ context.Context, key string, dest any) error {
	c.mu.Lock()
	raw, ok := c.get(key)
	c.mu.Unlock()
	if !ok {
		return ErrMiss
	}
	return json.Unmarshal(raw, dest)
}

func (c *MemoryCache) SetJSON(_ context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, raw, ttl)
	return nil
}

func (c *MemoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.items, k)
	}
	return nil
}

func (c *MemoryCache) BlacklistToken(_ context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(constants.RedisKeyTokenBlacklist+tokenID, []byte("1"), ttl)
	return nil
}

func (c *MemoryCache) IsTokenBlacklisted(_ context.Context, tokenID string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.get(constants.RedisKeyTokenBlacklist + tokenID)
	return ok, nil
}
