package ecs

import (
	"fmt"
	"sync"
)

// Entity is an opaque handle identifying one logical game object. Equality
// and hashing are by integer value; entities are never reused within a
// process lifetime. shardkeeper does not implement entity id recycling —
// see the Registry doc comment for what that would take.
type Entity uint64

// Int returns the entity's underlying integer, for diagnostics and logging.
func (e Entity) Int() uint64 { return uint64(e) }

// String implements fmt.Stringer for diagnostic printing.
func (e Entity) String() string { return fmt.Sprintf("Entity(%d)", uint64(e)) }

// Registry allocates entity ids and tracks which are currently live. It is
// the only piece of ecs state that is not component data: Storage knows
// nothing about liveness, which is why a Query always intersects its
// candidate set with a Registry snapshot rather than asking Storage to
// enforce it.
//
// Mutation (Create, Destroy) is serialized by mu. Snapshot may run
// concurrently with other Snapshots; it does not need to coordinate with a
// running Query's iteration, because the Query captured its own copy of the
// live set up front.
//
// Adding entity id recycling later means widening Entity to an
// (index, generation) pair and keying every component map on the pair
// instead of the bare index — today's contract promises none of that.
type Registry struct {
	mu   sync.RWMutex
	next Entity
	live map[Entity]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{live: make(map[Entity]struct{})}
}

// Create allocates the next entity id and marks it live. Infallible.
func (r *Registry) Create() Entity {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.next
	r.next++
	r.live[e] = struct{}{}
	return e
}

// Destroy marks e non-live, so that subsequent queries no longer surface
// it, and reports whether e was live beforehand. Component values for e may
// still linger in Storage until overwritten or explicitly removed: a
// query's candidate set is always intersected with a live snapshot, so a
// lingering value is never surfaced.
func (r *Registry) Destroy(e Entity) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, wasLive := r.live[e]
	delete(r.live, e)
	return wasLive
}

// Live reports whether e is currently live.
func (r *Registry) Live(e Entity) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.live[e]
	return ok
}

// Snapshot returns the set of currently-live entities as a freshly
// allocated slice, safe for the caller to read without further
// synchronization. This is what a Query's Iter calls to bound its
// candidate set before acquiring any component locks.
func (r *Registry) Snapshot() []Entity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entity, 0, len(r.live))
	for e := range r.live {
		out = append(out, e)
	}
	return out
}

// Count returns the number of currently-live entities.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}
