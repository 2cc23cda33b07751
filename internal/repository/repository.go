// Package repository provides typed CRUD facades over the storage slots, one
// per entity. Every mutation is a whole-collection read-modify-write: the
// store holds one list per entity and the list is replaced on each save, so
// the persisted slot, not any in-memory cache, is the source of truth.
package repository

import (
	"sync"

	"dental-center-server/internal/storage"
)

// Entity is any record addressed by a string identifier.
type Entity interface {
	EntityID() string
}

// collection is the shared read-modify-write core behind the typed
// repositories. The mutex serializes mutations within this process; writes
// from other processes still race last-write-wins, as with the storage
// substrate itself.
type collection[T Entity] struct {
	store *storage.Store
	key   string
	mu    sync.Mutex
}

// All returns every record in the collection.
func (c *collection[T]) All() []T {
	return storage.GetList[T](c.store, c.key)
}

// Add appends the record and persists the full list. The caller supplies a
// fully populated record, identifier and timestamps included.
func (c *collection[T]) Add(rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	list := storage.GetList[T](c.store, c.key)
	list = append(list, rec)
	storage.SetList(c.store, c.key, list)
}

// Update applies fn to the first record whose id matches and persists the
// full list. It reports whether a record was found; an unknown id leaves the
// collection untouched.
func (c *collection[T]) Update(id string, fn func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	list := storage.GetList[T](c.store, c.key)
	for i := range list {
		if list[i].EntityID() == id {
			fn(&list[i])
			storage.SetList(c.store, c.key, list)
			return true
		}
	}
	return false
}

// Delete removes every record whose id matches and persists the remainder.
// Deleting an unknown id is a no-op.
func (c *collection[T]) Delete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	list := storage.GetList[T](c.store, c.key)
	kept := list[:0]
	for _, rec := range list {
		if rec.EntityID() != id {
			kept = append(kept, rec)
		}
	}
	storage.SetList(c.store, c.key, kept)
}

// Find returns the first record whose id matches.
func (c *collection[T]) Find(id string) (T, bool) {
	for _, rec := range storage.GetList[T](c.store, c.key) {
		if rec.EntityID() == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}
