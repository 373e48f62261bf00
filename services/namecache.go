package services

import (
	"context"
	"sync"
	"time"
)

// NameLoader fetches the display name for an employee id.
type NameLoader func(ctx context.Context, employeeID string) (string, error)

// NameCache is a read-through cache for employee display names. It is built
// per request and passed to whoever decorates responses; it must not be kept
// in a package-level variable with ambient lifetime.
type NameCache struct {
	loader NameLoader
	ttl    time.Duration

	mu      sync.Mutex
	entries map[string]nameEntry
	now     func() time.Time
}

type nameEntry struct {
	name     string
	loadedAt time.Time
}

func NewNameCache(loader NameLoader, ttl time.Duration) *NameCache {
	return &NameCache{
		loader:  loader,
		ttl:     ttl,
		entries: map[string]nameEntry{},
		now:     time.Now,
	}
}

func (c *NameCache) Get(ctx context.Context, employeeID string) (string, error) {
	c.mu.Lock()
	entry, ok := c.entries[employeeID]
	c.mu.Unlock()
	if ok && c.now().Sub(entry.loadedAt) < c.ttl {
		return entry.name, nil
	}

	name, err := c.loader(ctx, employeeID)
	if err != nil {
		return "", err
	}
	c.mu.Lock()
	c.entries[employeeID] = nameEntry{name: name, loadedAt: c.now()}
	c.mu.Unlock()
	return name, nil
}
