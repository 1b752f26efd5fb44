package ecs

import "errors"

// ErrDuplicateTypeInQuery is returned by the NewQueryN constructors when a
// field shape references the same component type more than once, including
// a Shared and an Exclusive descriptor for the same type. Acquiring the
// same reader/writer lock twice within one query would deadlock, so this is
// rejected at construction rather than at Iter time.
var ErrDuplicateTypeInQuery = errors.New("ecs: duplicate component type in query")

// ErrLockPoisoned is returned by Insert, Remove, Contains, WithReadLock,
// WithWriteLock and Iter when a prior holder of the same component type's
// lock panicked while holding it. A poisoned component type never
// recovers; the condition is meant to be fatal to the caller, matching a
// panicking goroutine corrupting that type's invariants.
var ErrLockPoisoned = errors.New("ecs: component lock poisoned by a prior panic")
