package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"store-api/models"
)

// Entity is satisfied by any model that embeds models.Meta.
type Entity interface {
	Metadata() *models.Meta
}

// Collection is an in-memory, insertion-ordered collection of one entity
// type. It is the only place records live; there is no persistence. All
// operations are linear scans, which is fine for the dataset sizes this
// service handles.
//
// Reads return copies, so callers never hold a reference into the
// collection's backing slice.
type Collection[T any, PT interface {
	*T
	Entity
}] struct {
	mu    sync.RWMutex
	items []T
}

// NewCollection returns an empty collection.
func NewCollection[T any, PT interface {
	*T
	Entity
}]() *Collection[T, PT] {
	return &Collection[T, PT]{}
}

// All returns a snapshot copy of the collection in insertion order.
func (c *Collection[T, PT]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the record with the given id, if present.
func (c *Collection[T, PT]) Get(id uuid.UUID) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.items {
		if PT(&c.items[i]).Metadata().ID == id {
			return c.items[i], true
		}
	}
	var zero T
	return zero, false
}

// Find returns the first record matching the predicate, if any.
func (c *Collection[T, PT]) Find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.items {
		if match(c.items[i]) {
			return c.items[i], true
		}
	}
	var zero T
	return zero, false
}

// Create mints a new id, stamps createdAt = updatedAt = now, stores the
// record and returns it. It never fails.
func (c *Collection[T, PT]) Create(v T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	m := PT(&v).Metadata()
	m.ID = uuid.New()
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now
	c.items = append(c.items, v)
	return v
}

// Update applies a typed mutation to the record with the given id,
// refreshes updatedAt and returns the updated record. The apply function
// must not touch the embedded Meta.
func (c *Collection[T, PT]) Update(id uuid.UUID, apply func(*T)) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if PT(&c.items[i]).Metadata().ID == id {
			apply(&c.items[i])
			PT(&c.items[i]).Metadata().UpdatedAt = time.Now().UTC()
			return c.items[i], true
		}
	}
	var zero T
	return zero, false
}

// Delete removes the record with the given id and reports whether it was
// present.
func (c *Collection[T, PT]) Delete(id uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if PT(&c.items[i]).Metadata().ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of stored records.
func (c *Collection[T, PT]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
