// Package store holds the console's in-memory caches of backend-owned
// collections. Each Collection keeps one entity list plus the loading/error
// flags of the most recent operation against it. The backend remains the
// source of truth; these caches are reconciled after every gateway call.
// File: store/resource.go
package store

import "sync"

// Collection is the cache for one entity type. A single instance per entity
// lives for the whole process and is shared by every request that renders the
// entity's screen. All mutation goes through the methods below.
//
// The loading flag is shared across operations: two in-flight operations on
// the same collection interfere, and the one that finishes last wins. That is
// the inherited behavior of the console and is preserved deliberately.
type Collection[T any] struct {
	mu      sync.Mutex
	idOf    func(T) string
	data    []T
	loading bool
	err     string
}

// NewCollection creates an empty collection. idOf extracts the identity field
// used by Remove and Mutate.
func NewCollection[T any](idOf func(T) string) *Collection[T] {
	return &Collection[T]{idOf: idOf}
}

// SetAll replaces the cached list wholesale, preserving order. Used after a
// full list fetch.
func (c *Collection[T]) SetAll(records []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make([]T, len(records))
	copy(c.data, records)
}

// Add appends one record, as echoed by the backend after a create. No
// deduplication happens here; the backend issues unique ids.
func (c *Collection[T]) Add(record T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = append(c.data, record)
}

// Remove filters out the record whose id matches. Removing an absent id is a
// silent no-op: stale ids are expected when the backend list moved under us.
func (c *Collection[T]) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.data[:0]
	for _, record := range c.data {
		if c.idOf(record) != id {
			kept = append(kept, record)
		}
	}
	c.data = kept
}

// Mutate applies fn to the record whose id matches, in place. A missing id is
// a silent no-op, matching Remove.
func (c *Collection[T]) Mutate(id string, fn func(*T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.data {
		if c.idOf(c.data[i]) == id {
			fn(&c.data[i])
			return
		}
	}
}

// SetLoading flips the shared in-flight flag.
func (c *Collection[T]) SetLoading(loading bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = loading
}

// SetError records the last operation's failure message. An empty string
// clears it. Errors persist until the next call touches this field.
func (c *Collection[T]) SetError(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = message
}

// Data returns a copy of the cached list.
func (c *Collection[T]) Data() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.data))
	copy(out, c.data)
	return out
}

// Len returns the cached record count.
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}

// Loading reports whether an operation is in flight.
func (c *Collection[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Error returns the last recorded failure message, or "".
func (c *Collection[T]) Error() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Snapshot returns data and both status flags in one consistent read, for
// rendering a screen.
func (c *Collection[T]) Snapshot() (data []T, loading bool, errMsg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data = make([]T, len(c.data))
	copy(data, c.data)
	return data, c.loading, c.err
}

// Reset empties the collection and clears both flags. Test hook.
func (c *Collection[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = nil
	c.loading = false
	c.err = ""
}
