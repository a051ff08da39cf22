package cache

import (
	"context"
	"sync"

	"nibog_payments/internal/usecase/interfaces"
)

// MemoryRecoveryCache is an in-process recovery cache used for local runs and
// tests. Single-key upserts with last-writer-wins, matching the semantics the
// resolver expects from the DynamoDB-backed implementation.

type MemoryRecoveryCache struct {
	mu    sync.RWMutex
	items map[string]string
}

var _ interfaces.IRecoveryCache = (*MemoryRecoveryCache)(nil)

func NewMemoryRecoveryCache() *MemoryRecoveryCache {
	return &MemoryRecoveryCache{items: make(map[string]string)}
}

func (c *MemoryRecoveryCache) Get(_ context.Context, sessionID, key string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[sessionID+"/"+key]
	return v, ok, nil
}

func (c *MemoryRecoveryCache) Set(_ context.Context, sessionID, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[sessionID+"/"+key] = value
	return nil
}

func (c *MemoryRecoveryCache) Clear(_ context.Context, sessionID string, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.items, sessionID+"/"+key)
	}
	return nil
}
