// Package registry provides a generic thread-safe registry that allocates
// the IDs of the values it stores.
//
// Registry is designed for read-heavy workloads using sync.RWMutex. It owns
// its ID counter, so two registries never share an ID sequence and no
// process-wide counter exists.
//
// # Basic Usage
//
// Add allocates an ID and hands it to a constructor, storing the result only
// if construction succeeds:
//
//	r := registry.New[*Widget]()
//	id, err := r.Add(func(id registry.ID) (*Widget, error) {
//	    return NewWidget(id, "blue")
//	})
//
//	w, ok := r.Get(id)
//
// A failed constructor does not consume an ID:
//
//	_, err = r.Add(func(registry.ID) (*Widget, error) { return nil, errBad })
//	next, _ := r.Add(newWidget) // next == id + 1
//
// # Restoring
//
// Restore places a value under a known ID, for example one loaded from disk,
// and advances the counter so later Add calls never collide with it:
//
//	_ = r.Restore(7, w)
//	id, _ := r.Add(newWidget) // id == 8
//
// # Thread Safety
//
// All Registry methods are safe for concurrent use. The Range method iterates
// over a snapshot in ascending ID order, allowing mutations during iteration
// without affecting the iteration itself:
//
//	r.Range(func(id registry.ID, w *Widget) bool {
//	    if w.Stale() {
//	        r.Delete(id) // Won't affect current iteration
//	    }
//	    return true // continue iteration
//	})
package registry
