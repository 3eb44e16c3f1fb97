package sim

import "fmt"

// Registry is an insertion-ordered keyed store. Iteration always follows
// insertion order, which keeps every daily loop reproducible.
//
// Thread-safety: NOT thread-safe.
type Registry[T Entity] struct {
	kind  string
	byID  map[string]T
	order []string
}

// NewRegistry creates an empty registry. kind names the entity in errors.
func NewRegistry[T Entity](kind string) *Registry[T] {
	return &Registry[T]{
		kind: kind,
		byID: make(map[string]T),
	}
}

// Add inserts v. Returns ErrDuplicateKey if its id is already present.
func (r *Registry[T]) Add(v T) error {
	id := v.EntityID()
	if _, exists := r.byID[id]; exists {
		return fmt.Errorf("%s %q: %w", r.kind, id, ErrDuplicateKey)
	}
	r.byID[id] = v
	r.order = append(r.order, id)
	return nil
}

// Get returns the entity with the given id.
func (r *Registry[T]) Get(id string) (T, bool) {
	v, ok := r.byID[id]
	return v, ok
}

// Has reports whether id is registered.
func (r *Registry[T]) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// Len returns the number of entities.
func (r *Registry[T]) Len() int { return len(r.order) }

// IDs returns a copy of the ids in insertion order.
func (r *Registry[T]) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Each calls fn for every entity in insertion order.
func (r *Registry[T]) Each(fn func(T)) {
	for _, id := range r.order {
		fn(r.byID[id])
	}
}
