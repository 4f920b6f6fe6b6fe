package sheet

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache lazily loads a dataset once per process and shares the result
// with every caller. Concurrent first loads collapse into a single
// in-flight fetch. A failed load is cached as failed and is not retried
// automatically; Reload is the explicit refresh path.
type Cache[T any] struct {
	load func(ctx context.Context) (T, error)

	sf     singleflight.Group
	mu     sync.Mutex
	gen    uint64
	loaded bool
	value  T
	err    error
}

// NewCache creates a cache around the given load function.
func NewCache[T any](load func(ctx context.Context) (T, error)) *Cache[T] {
	return &Cache[T]{load: load}
}

// EnsureLoaded returns the cached value, triggering the load on first
// use. Callers arriving while a load is in flight share its outcome.
func (c *Cache[T]) EnsureLoaded(ctx context.Context) (T, error) {
	c.mu.Lock()
	if c.loaded {
		v, err := c.value, c.err
		c.mu.Unlock()
		return v, err
	}
	gen := c.gen
	c.mu.Unlock()

	// The flight is keyed by generation so a Reload issued while a
	// load is in flight starts a fresh fetch instead of joining the
	// stale one. A superseded flight must not overwrite newer state.
	v, err, _ := c.sf.Do(strconv.FormatUint(gen, 10), func() (any, error) {
		value, loadErr := c.load(ctx)

		c.mu.Lock()
		if c.gen == gen {
			c.loaded = true
			c.value = value
			c.err = loadErr
		}
		c.mu.Unlock()

		return value, loadErr
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// Reload discards the cached result and loads again. This is the only
// way a failed load is retried during the life of the process.
func (c *Cache[T]) Reload(ctx context.Context) (T, error) {
	c.mu.Lock()
	var zero T
	c.gen++
	c.loaded = false
	c.value = zero
	c.err = nil
	c.mu.Unlock()

	return c.EnsureLoaded(ctx)
}
