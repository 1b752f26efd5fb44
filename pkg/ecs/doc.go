/*
Package ecs implements shardkeeper's entity-component store: the
concurrent, async-aware data structure every game system reads and writes
through. It exposes heterogeneous, statically-typed views (Query1..Query8)
over a dynamically-typed component store (Storage), coordinates shared-read
/ exclusive-write access per component type without a global lock, and
integrates with Go's own cooperative scheduler so that lock acquisition can
suspend a goroutine while iteration itself stays synchronous and allocation
-bounded.

# Architecture

	┌─────────────────────────── ecs ───────────────────────────────┐
	│                                                                 │
	│  ┌───────────────┐        ┌─────────────────────────────┐     │
	│  │   Registry    │        │          Storage             │     │
	│  │ next Entity   │        │  reflect.Type -> componentMap│     │
	│  │ live map      │        │  each guarded by its own     │     │
	│  │ Snapshot()    │        │  context-aware rwLock        │     │
	│  └───────┬───────┘        └───────────────┬───────────────┘    │
	│          │                                 │                    │
	│          └───────────────┬─────────────────┘                    │
	│                          ▼                                      │
	│                  ┌───────────────┐                              │
	│                  │  Query1..8[…] │  field shape, known at       │
	│                  │  Read[T]/Write[T]  construction time         │
	│                  └───────┬───────┘                              │
	│                          │ Iter(ctx) — the one suspension point  │
	│                          ▼                                      │
	│                  ┌───────────────┐                              │
	│                  │ Iterator1..8  │  synchronous Next(), holds    │
	│                  │               │  the lock guards until Close │
	│                  └───────────────┘                              │
	└─────────────────────────────────────────────────────────────────┘

# Locking

Component Storage is not a single global lock: each component type gets its
own rwLock (pkg rwlock.go), so an Exclusive query on Position never blocks a
Shared query on Velocity. A Query's Iter acquires every lock its field shape
touches in a single deterministic order — component types sorted by their
reflect.Type string — which rules out the classic dining-philosophers
deadlock between a writer-of-A/reader-of-B task and a reader-of-A/writer-of-B
task.

# Suspension

rwLock is built on golang.org/x/sync/semaphore.Weighted rather than
sync.RWMutex specifically so that Iter(ctx) can be cancelled while it is
waiting on a contended lock: a cancelled context makes Acquire return
immediately and any locks already acquired for that Iter call are released,
in reverse acquisition order, before the error is returned. Once Iter
returns successfully all locks are held for the lifetime of the iterator;
Next is synchronous and never suspends.

# Type identity

A component's storage key is its reflect.Type, obtained via
reflect.TypeFor[T](). Two distinct Go types never collide; an unregistered
type used in a query simply has no componentMap yet, which is treated as an
empty entity set rather than an error.
*/
package ecs
