package collision

import (
	"cmp"
	"slices"

	"github.com/vovakirdan/space-garden/internal/core"
)

// ID identifies a live collider. IDs are never reused within a world.
type ID uint32

// Entry is the registry's view of a collider: who it is, what it is, where it is.
type Entry struct {
	ID   ID        `msgpack:"id"`
	Type Type      `msgpack:"type"`
	Rect core.Rect `msgpack:"rect"`
}

// Collider is implemented by entities that take part in collision checks.
type Collider interface {
	Collider() Entry
}

// IDSource hands out monotonically increasing collider ids.
type IDSource struct {
	Next ID `msgpack:"next"`
}

// Take returns a fresh id.
func (s *IDSource) Take() ID {
	s.Next++
	return s.Next
}

// Registry maps collider ids to their current entry.
// It is mutated in place during a tick so later stages see earlier moves.
type Registry struct {
	entries map[ID]Entry
	sorted  []Entry // Cached Entries() result, nil when stale
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[ID]Entry)}
}

// Put inserts or overwrites the entry for e.ID.
func (r *Registry) Put(e Entry) {
	r.entries[e.ID] = e
	r.sorted = nil
}

// Remove deletes an entry; removing a missing id is a no-op.
func (r *Registry) Remove(id ID) {
	if _, ok := r.entries[id]; ok {
		delete(r.entries, id)
		r.sorted = nil
	}
}

// Get returns the entry for id and whether it exists.
func (r *Registry) Get(id ID) (Entry, bool) {
	e, ok := r.entries[id]
	return e, ok
}

// Len returns the number of live colliders.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Entries returns all entries in ascending id order.
// The returned slice is shared until the next Put or Remove; do not modify it.
func (r *Registry) Entries() []Entry {
	if r.sorted != nil {
		return r.sorted
	}
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Entry) int {
		return cmp.Compare(a.ID, b.ID)
	})
	r.sorted = out
	return out
}

// Clone returns an independent copy.
func (r *Registry) Clone() *Registry {
	c := &Registry{entries: make(map[ID]Entry, len(r.entries))}
	for k, v := range r.entries {
		c.entries[k] = v
	}
	return c
}
