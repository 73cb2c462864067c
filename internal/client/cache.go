package client

import (
	"context"
	"sync"
)

// State is the lifecycle of a document cache.
type State int

const (
	StateUninitialized State = iota // nothing fetched yet
	StateLoading                    // a refresh is in flight
	StateReady                      // Data holds the last canonical copy
	StateFailed                     // last refresh failed; stale Data may remain
)

// Cache holds the last-fetched copy of one document kind.  Transitions:
// Uninitialized -> Loading -> Ready | Failed; a successful mutation goes
// Ready -> Loading -> Ready with freshly fetched data.  A failed refresh
// records the error but keeps the previous data, so the presentation layer
// can fall back to stale-but-available content.
type Cache[T any] struct {
	mu      sync.Mutex
	state   State
	data    T
	hasData bool
	err     error
	fetch   func(ctx context.Context) (T, error)
}

func newCache[T any](fetch func(ctx context.Context) (T, error)) *Cache[T] {
	return &Cache[T]{fetch: fetch}
}

// Refresh fetches the canonical document and replaces the cached copy
// wholesale.  On failure the cache enters Failed, the error is recorded and
// returned, and previously cached data is retained.
func (c *Cache[T]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.state = StateLoading
	c.err = nil
	c.mu.Unlock()

	data, err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = StateFailed
		c.err = err
		return err
	}
	c.state = StateReady
	c.data = data
	c.hasData = true
	return nil
}

// mutate runs op behind the secret precondition and, on success, refreshes
// so the cache reflects server-canonical state rather than the locally
// composed input.  A failed mutation returns the error without touching the
// cached data or state.
func (c *Cache[T]) mutate(ctx context.Context, secret string, op func(ctx context.Context) error) error {
	if secret == "" {
		return ErrSecretRequired
	}
	if err := op(ctx); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// Data returns the last known-good document and whether one exists.  It may
// be stale when State() is Failed.
func (c *Cache[T]) Data() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data, c.hasData
}

// State returns the current lifecycle state.
func (c *Cache[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err returns the most recent refresh error, nil once a refresh succeeds.
func (c *Cache[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}
