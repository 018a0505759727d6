// Package cache provides a single-slot-per-key TTL memoization of expensive
// producers. There is no eviction beyond time expiry; the key space here is
// tiny (one slot for the merged feed).
package cache

import (
	"sync"
	"time"
)

type Clock func() time.Time

type entry[T any] struct {
	value    T
	storedAt time.Time
}

type Cache[T any] struct {
	mu    sync.Mutex
	items map[string]entry[T]
	ttl   time.Duration
	now   Clock
}

// New creates a Cache with the given TTL. A nil clock uses time.Now.
func New[T any](ttl time.Duration, now Clock) *Cache[T] {
	if now == nil {
		now = time.Now
	}
	return &Cache[T]{
		items: make(map[string]entry[T]),
		ttl:   ttl,
		now:   now,
	}
}

// Get returns the cached value for key if it is younger than the TTL,
// otherwise it runs produce and stores the result. The second return value
// reports whether produce was run. A producer error is returned as-is and
// nothing is stored, so the next call retries.
func (c *Cache[T]) Get(key string, produce func() (T, error)) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok && c.now().Sub(e.storedAt) < c.ttl {
		return e.value, false, nil
	}

	value, err := produce()
	if err != nil {
		var zero T
		return zero, true, err
	}

	c.items[key] = entry[T]{value: value, storedAt: c.now()}
	return value, true, nil
}

// Invalidate drops the slot for key so the next Get recomputes.
func (c *Cache[T]) Invalidate(key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

// Age returns how long ago the slot for key was stored, and whether it
// exists at all.
func (c *Cache[T]) Age(key string) (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.items[key]
	if !ok {
		return 0, false
	}
	return c.now().Sub(e.storedAt), true
}

// Size returns the number of occupied slots.
func (c *Cache[T]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
