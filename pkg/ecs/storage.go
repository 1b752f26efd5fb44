package ecs

import (
	"context"
	"fmt"
	"reflect"
	"sync"
)

// closer is implemented by components that hold resources needing explicit
// cleanup. Go has no destructors, so Storage calls Close on any component
// implementing this interface when it is overwritten, removed, or the
// Storage itself is closed — the previous value is dropped exactly once,
// and closing Storage drops every stored component exactly once.
type closer interface {
	Close()
}

// componentMap is the per-type entry in Storage: a reader/writer lock
// guarding a plain map from Entity to a boxed *T (boxed so Exclusive
// borrows can mutate the stored value in place and have that mutation
// immediately visible to later iteration of the same query).
type componentMap struct {
	lock     *rwLock
	data     map[Entity]any
	poisoned bool
	poisonMu sync.Mutex
}

func newComponentMap() *componentMap {
	return &componentMap{lock: newRWLock(), data: make(map[Entity]any)}
}

func (cm *componentMap) isPoisoned() bool {
	cm.poisonMu.Lock()
	defer cm.poisonMu.Unlock()
	return cm.poisoned
}

func (cm *componentMap) poison() {
	cm.poisonMu.Lock()
	cm.poisoned = true
	cm.poisonMu.Unlock()
}

// guard runs fn while recovering any panic: it marks the component map
// poisoned and re-panics, so the panic still surfaces to whatever goroutine
// caused it (and, transitively, its caller), matching the "prior holder
// panicked while holding the lock" framing of ErrLockPoisoned.
func (cm *componentMap) guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			cm.poison()
			panic(r)
		}
	}()
	return fn()
}

// Storage is the component store: a mapping from component type to a
// per-type locked map from Entity to component value. A per-type entry is
// created lazily on first Insert for that type. Storage and Registry are
// deliberately separate — Storage does not know which entities are live,
// only Query's candidate-set construction does.
type Storage struct {
	mu    sync.RWMutex
	types map[reflect.Type]*componentMap
}

// NewStorage returns an empty component store.
func NewStorage() *Storage {
	return &Storage{types: make(map[reflect.Type]*componentMap)}
}

// mapFor returns the componentMap for t, creating it under write lock if
// create is true and it does not yet exist. When create is false and no map
// exists yet, it returns nil — the caller treats that as an empty entity
// set for t, never an error.
func (s *Storage) mapFor(t reflect.Type, create bool) *componentMap {
	s.mu.RLock()
	cm, ok := s.types[t]
	s.mu.RUnlock()
	if ok || !create {
		return cm
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if cm, ok = s.types[t]; ok {
		return cm
	}
	cm = newComponentMap()
	s.types[t] = cm
	return cm
}

// Insert places or overwrites entity e's component of type T. If a prior
// value existed and implements closer, its Close is called exactly once
// while the write lock is held. Insert cannot fail except when T's
// component lock is poisoned.
func Insert[T any](s *Storage, e Entity, value T) error {
	t := reflect.TypeFor[T]()
	cm := s.mapFor(t, true)
	if cm.isPoisoned() {
		return fmt.Errorf("ecs: insert %s: %w", t, ErrLockPoisoned)
	}
	if err := cm.lock.acquireWrite(context.Background()); err != nil {
		return err
	}
	defer cm.lock.releaseWrite()

	return cm.guard(func() error {
		if old, ok := cm.data[e]; ok {
			if c, ok := old.(closer); ok {
				c.Close()
			}
		}
		boxed := new(T)
		*boxed = value
		cm.data[e] = boxed
		return nil
	})
}

// Remove removes entity e's component of type T, if present, and returns
// it. Removing an absent component is a no-op, not an error. If the
// removed value implements closer, Close is called once.
func Remove[T any](s *Storage, e Entity) (T, bool, error) {
	var zero T
	t := reflect.TypeFor[T]()
	cm := s.mapFor(t, false)
	if cm == nil {
		return zero, false, nil
	}
	if cm.isPoisoned() {
		return zero, false, fmt.Errorf("ecs: remove %s: %w", t, ErrLockPoisoned)
	}
	if err := cm.lock.acquireWrite(context.Background()); err != nil {
		return zero, false, err
	}
	defer cm.lock.releaseWrite()

	var out T
	var found bool
	err := cm.guard(func() error {
		raw, ok := cm.data[e]
		if !ok {
			return nil
		}
		delete(cm.data, e)
		boxed := raw.(*T)
		if c, ok := raw.(closer); ok {
			c.Close()
		}
		out, found = *boxed, true
		return nil
	})
	return out, found, err
}

// Contains is a convenience Shared-lock probe for whether entity e has a
// component of type T.
func Contains[T any](s *Storage, e Entity) (bool, error) {
	t := reflect.TypeFor[T]()
	cm := s.mapFor(t, false)
	if cm == nil {
		return false, nil
	}
	if cm.isPoisoned() {
		return false, fmt.Errorf("ecs: contains %s: %w", t, ErrLockPoisoned)
	}
	if err := cm.lock.acquireRead(context.Background()); err != nil {
		return false, err
	}
	defer cm.lock.releaseRead()

	_, ok := cm.data[e]
	return ok, nil
}

// WithReadLock runs fn with a read-only view of every entity currently
// holding a component of type T, under T's Shared lock. It exists for
// callers that need a scoped acquisition rather than Storage's
// single-entity accessors; the Query Planner takes its locks directly and
// does not go through it.
func WithReadLock[T any](ctx context.Context, s *Storage, fn func(view map[Entity]T) error) error {
	t := reflect.TypeFor[T]()
	cm := s.mapFor(t, true)
	if cm.isPoisoned() {
		return fmt.Errorf("ecs: with-read-lock %s: %w", t, ErrLockPoisoned)
	}
	if err := cm.lock.acquireRead(ctx); err != nil {
		return err
	}
	defer cm.lock.releaseRead()

	return cm.guard(func() error {
		view := make(map[Entity]T, len(cm.data))
		for e, raw := range cm.data {
			view[e] = *raw.(*T)
		}
		return fn(view)
	})
}

// WithWriteLock runs fn with a mutable view of every entity currently
// holding a component of type T, under T's Exclusive lock.
func WithWriteLock[T any](ctx context.Context, s *Storage, fn func(view map[Entity]*T) error) error {
	t := reflect.TypeFor[T]()
	cm := s.mapFor(t, true)
	if cm.isPoisoned() {
		return fmt.Errorf("ecs: with-write-lock %s: %w", t, ErrLockPoisoned)
	}
	if err := cm.lock.acquireWrite(ctx); err != nil {
		return err
	}
	defer cm.lock.releaseWrite()

	return cm.guard(func() error {
		view := make(map[Entity]*T, len(cm.data))
		for e, raw := range cm.data {
			view[e] = raw.(*T)
		}
		return fn(view)
	})
}

// Close drops every stored component exactly once, calling Close on any
// that implement closer, then leaves Storage empty. It does not check for
// poisoned component types — closing happens unconditionally.
func (s *Storage) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cm := range s.types {
		_ = cm.lock.acquireWrite(context.Background())
		for _, raw := range cm.data {
			if c, ok := raw.(closer); ok {
				c.Close()
			}
		}
		cm.data = nil
		cm.lock.releaseWrite()
	}
	s.types = make(map[reflect.Type]*componentMap)
}

// Len reports how many entities currently hold a component of type T.
// Intended for metrics collection, not for hot-path query logic.
func Len[T any](s *Storage) int {
	t := reflect.TypeFor[T]()
	cm := s.mapFor(t, false)
	if cm == nil {
		return 0
	}
	_ = cm.lock.acquireRead(context.Background())
	defer cm.lock.releaseRead()
	return len(cm.data)
}

// Counts reports, for every component type that has ever had an entry
// inserted, how many entities currently hold a component of that type,
// keyed by the type's short name. Unlike Len it needs no compile-time type
// parameter, which is what lets metrics collection enumerate every
// registered component type without pkg/metrics importing any concrete
// component type from pkg/game.
func (s *Storage) Counts() map[string]int {
	s.mu.RLock()
	types := make([]*componentMap, 0, len(s.types))
	names := make([]string, 0, len(s.types))
	for t, cm := range s.types {
		types = append(types, cm)
		names = append(names, t.Name())
	}
	s.mu.RUnlock()

	out := make(map[string]int, len(types))
	for i, cm := range types {
		_ = cm.lock.acquireRead(context.Background())
		out[names[i]] = len(cm.data)
		cm.lock.releaseRead()
	}
	return out
}
