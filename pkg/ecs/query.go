package ecs

import (
	"context"
	"fmt"
	"sort"

	"github.com/shardkeeper/shardkeeper/pkg/metrics"
)

// coreQuery is the type-erased query planner shared by every QueryN arity.
// The typed QueryN wrappers exist only to give callers compile-time field
// accessors; all locking and candidate-set logic lives here exactly once.
type coreQuery struct {
	reg     *Registry
	storage *Storage
	descs   []descriptor
	// order is the index permutation that sorts descs by descs[i].typ's
	// string form, ascending. Every Iter call acquires component locks
	// strictly in this order (and releases them in the reverse of it),
	// regardless of the
	// order fields were declared in — a fixed global order across all
	// queries is what prevents two queries that want overlapping
	// component types, one Exclusive and one Shared, from deadlocking on
	// each other by acquiring them in opposite orders.
	order []int
}

func newCoreQuery(reg *Registry, storage *Storage, descs []descriptor) (*coreQuery, error) {
	if err := validate(descs); err != nil {
		return nil, err
	}
	order := make([]int, len(descs))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return descs[order[a]].typ.String() < descs[order[b]].typ.String()
	})
	return &coreQuery{reg: reg, storage: storage, descs: descs, order: order}, nil
}

// coreIterator holds the locks and candidate set for one Iter call. cms is
// indexed in declaration order (matching descs), not lock-acquisition
// order, so typed accessors can index it directly by field position.
type coreIterator struct {
	descs      []descriptor
	cms        []*componentMap // cms[i] corresponds to descs[i]; nil if never acquired (shouldn't happen post-construction)
	order      []int           // acquisition order, for symmetric release
	candidates []Entity
	pos        int
	released   bool
}

// iter captures the Registry's live snapshot, acquires every descriptor's
// component lock in fixed global order, then computes the candidate set as
// that snapshot intersected with presence in every one of the query's
// component maps. An entity created while iter waits on a lock is not part
// of this pass. If
// any component type has never had a value inserted (so no componentMap
// exists for it yet), the candidate set is trivially empty and no locks are
// taken at all — an empty query result, not an error.
//
// If ctx is cancelled while waiting on a contended lock, any locks already
// acquired for this call are released, in the reverse of the order they
// were acquired, before the context error is returned.
func (q *coreQuery) iter(ctx context.Context) (*coreIterator, error) {
	timer := metrics.NewTimer()
	defer timer.ObserveDurationVec(metrics.QueryLatency, q.label())

	live := q.reg.Snapshot()

	cms := make([]*componentMap, len(q.descs))
	for i, d := range q.descs {
		cm := q.storage.mapFor(d.typ, false)
		if cm == nil {
			return emptyIterator(q.descs), nil
		}
		cms[i] = cm
	}

	acquired := make([]int, 0, len(q.order))
	unacquire := func() {
		for i := len(acquired) - 1; i >= 0; i-- {
			idx := acquired[i]
			if q.descs[idx].mode == Exclusive {
				cms[idx].lock.releaseWrite()
			} else {
				cms[idx].lock.releaseRead()
			}
		}
	}

	for _, idx := range q.order {
		d := q.descs[idx]
		cm := cms[idx]
		if cm.isPoisoned() {
			metrics.LockPoisonedTotal.WithLabelValues(d.typ.Name()).Inc()
			unacquire()
			return nil, fmt.Errorf("ecs: iter %s: %w", d.typ, ErrLockPoisoned)
		}
		mode := "read"
		if d.mode == Exclusive {
			mode = "write"
		}
		waitTimer := metrics.NewTimer()
		var err error
		if d.mode == Exclusive {
			err = cm.lock.acquireWrite(ctx)
		} else {
			err = cm.lock.acquireRead(ctx)
		}
		waitTimer.ObserveDurationVec(metrics.LockWaitDuration, d.typ.Name(), mode)
		if err != nil {
			unacquire()
			return nil, err
		}
		acquired = append(acquired, idx)
	}

	candidates := make([]Entity, 0, len(live))
	for _, e := range live {
		inAll := true
		for _, cm := range cms {
			if _, ok := cm.data[e]; !ok {
				inAll = false
				break
			}
		}
		if inAll {
			candidates = append(candidates, e)
		}
	}

	return &coreIterator{descs: q.descs, cms: cms, order: q.order, candidates: candidates}, nil
}

// label builds the QueryLatency metric's label from this query's component
// types, in declaration order, e.g. "Position+Velocity".
func (q *coreQuery) label() string {
	s := ""
	for i, d := range q.descs {
		if i > 0 {
			s += "+"
		}
		s += d.typ.Name()
	}
	return s
}

// emptyIterator is returned when some descriptor's component type has no
// componentMap at all yet; it holds no locks and yields nothing.
func emptyIterator(descs []descriptor) *coreIterator {
	return &coreIterator{descs: descs, released: true}
}

// next advances to the next candidate entity, returning its raw (boxed)
// component values in descriptor order, or ok=false once exhausted.
func (it *coreIterator) next() (Entity, []any, bool) {
	if it.pos >= len(it.candidates) {
		return 0, nil, false
	}
	e := it.candidates[it.pos]
	it.pos++

	raws := make([]any, len(it.descs))
	for i, cm := range it.cms {
		raws[i] = cm.data[e]
	}
	return e, raws, true
}

// release drops every lock this iterator holds, in the reverse of
// acquisition order, exactly once. Safe to call multiple times.
func (it *coreIterator) release() {
	if it.released {
		return
	}
	it.released = true
	for i := len(it.order) - 1; i >= 0; i-- {
		idx := it.order[i]
		if it.descs[idx].mode == Exclusive {
			it.cms[idx].lock.releaseWrite()
		} else {
			it.cms[idx].lock.releaseRead()
		}
	}
}
