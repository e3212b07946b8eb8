package cache

import (
	"sync"
	"time"
)

type entry[T any] struct {
	value      T
	capturedAt time.Time
}

// Cache memoizes computed values per key until a TTL elapses. Entries are
// replaced wholesale, never mutated in place. Concurrent lookups of an
// expired key may race to recompute; the last write wins.
type Cache[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
}

func New[T any]() *Cache[T] {
	return &Cache[T]{
		entries: make(map[string]entry[T]),
	}
}

// GetOrCompute returns the cached value for key if it is younger than ttl.
// Otherwise compute is invoked and its result stored with the current
// timestamp. Compute errors are returned to the caller and never cached,
// so a transient failure self-heals on the next lookup.
func (c *Cache[T]) GetOrCompute(key string, ttl time.Duration, compute func() (T, error)) (T, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if ok && time.Since(e.capturedAt) < ttl {
		return e.value, nil
	}

	value, err := compute()
	if err != nil {
		var zero T
		return zero, err
	}

	c.mu.Lock()
	c.entries[key] = entry[T]{value: value, capturedAt: time.Now()}
	c.mu.Unlock()

	return value, nil
}

// Len reports the number of stored entries, expired ones included.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
