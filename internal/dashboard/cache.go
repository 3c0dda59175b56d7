package dashboard

import (
	"context"
	"sync"
)

// FetchFunc loads the full list for one entity kind.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Cache holds the last successfully fetched list for one entity kind.
// Refresh replaces the whole list; there is no partial merge.
type Cache[T any] struct {
	mu      sync.RWMutex
	items   []T
	fetch   FetchFunc[T]
	onError func(error)
}

// NewCache creates an empty cache. onError is called for every failed
// refresh and may be nil.
func NewCache[T any](fetch FetchFunc[T], onError func(error)) *Cache[T] {
	return &Cache[T]{
		items:   []T{},
		fetch:   fetch,
		onError: onError,
	}
}

// Refresh fetches the full list. On failure the previous contents stay in place.
func (c *Cache[T]) Refresh(ctx context.Context) error {
	items, err := c.fetch(ctx)
	if err != nil {
		if c.onError != nil {
			c.onError(err)
		}
		return err
	}

	fresh := make([]T, len(items))
	copy(fresh, items)

	c.mu.Lock()
	c.items = fresh
	c.mu.Unlock()
	return nil
}

// Items returns a copy of the cached list in server order.
func (c *Cache[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

