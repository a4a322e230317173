package registry

import (
	"errors"
	"sort"
	"sync"
)

// ID identifies an entry. The zero ID is never allocated.
type ID uint64

// ErrIDInUse indicates Restore was given an ID that is already registered.
var ErrIDInUse = errors.New("registry: id already in use")

// ErrZeroID indicates Restore was given the zero ID.
var ErrZeroID = errors.New("registry: zero id")

// Registry is a thread-safe store of values keyed by IDs it allocates itself.
// It uses sync.RWMutex for read-heavy workloads. IDs increase monotonically
// and are never reused, even after Delete.
type Registry[V any] struct {
	mu      sync.RWMutex
	last    ID
	entries map[ID]V
}

// New creates a new empty registry.
func New[V any]() *Registry[V] {
	return &Registry[V]{
		entries: make(map[ID]V),
	}
}

// Add allocates the next ID, builds a value for it, and stores the value.
//
// build runs under the write lock and must not call back into the registry.
// If build fails, nothing is stored and the ID is not consumed.
func (r *Registry[V]) Add(build func(id ID) (V, error)) (ID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.last + 1
	v, err := build(id)
	if err != nil {
		return 0, err
	}
	r.last = id
	r.entries[id] = v
	return id, nil
}

// Restore stores v under a caller-chosen ID, advancing the allocator past it.
// Used when rebuilding a registry from persisted state.
func (r *Registry[V]) Restore(id ID, v V) error {
	if id == 0 {
		return ErrZeroID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; exists {
		return ErrIDInUse
	}
	r.entries[id] = v
	if id > r.last {
		r.last = id
	}
	return nil
}

// Get returns the value for id and whether it exists.
func (r *Registry[V]) Get(id ID) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.entries[id]
	return v, ok
}

// Has returns true if id is registered.
func (r *Registry[V]) Has(id ID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[id]
	return ok
}

// Delete removes id from the registry and reports whether it was present.
func (r *Registry[V]) Delete(id ID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return false
	}
	delete(r.entries, id)
	return true
}

// IDs returns all registered IDs in ascending order.
func (r *Registry[V]) IDs() []ID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedIDs()
}

// Last returns the most recently allocated or restored ID.
func (r *Registry[V]) Last() ID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.last
}

// Len returns the number of entries in the registry.
func (r *Registry[V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Range iterates over all entries in ascending ID order.
// If fn returns false, iteration stops.
//
// Range iterates over a snapshot of the registry, so it is safe
// to call Add or Delete during iteration without affecting
// the current iteration.
func (r *Registry[V]) Range(fn func(ID, V) bool) {
	r.mu.RLock()
	ids := r.sortedIDs()
	snapshot := make([]V, len(ids))
	for i, id := range ids {
		snapshot[i] = r.entries[id]
	}
	r.mu.RUnlock()

	for i, id := range ids {
		if !fn(id, snapshot[i]) {
			return
		}
	}
}

// sortedIDs must be called with r.mu held.
func (r *Registry[V]) sortedIDs() []ID {
	ids := make([]ID, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
