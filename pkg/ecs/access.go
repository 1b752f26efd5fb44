package ecs

import (
	"fmt"
	"reflect"
)

// Mode is a query field's declared access mode for one component type.
type Mode int

const (
	// Shared is a read-only borrow; any number of Shared holders on the
	// same component type may run concurrently.
	Shared Mode = iota
	// Exclusive is a read-write borrow; no other holder, shared or
	// exclusive, may touch the same component type concurrently.
	Exclusive
)

func (m Mode) String() string {
	if m == Exclusive {
		return "Exclusive"
	}
	return "Shared"
}

// descriptor identifies one query field: a component type plus the access
// mode requested for it. The set of descriptors a query carries determines
// which component-type locks Iter must acquire.
type descriptor struct {
	typ  reflect.Type
	mode Mode
}

// Field is a compile-time-typed access descriptor for component type T,
// produced by Read[T] or Write[T] and passed to a NewQueryN constructor.
// It also knows how to extract T (or *T) out of the raw, type-erased value
// a componentMap hands back during iteration.
type Field[T any] struct {
	mode Mode
}

// Read declares a Shared (read-only) field for component type T.
func Read[T any]() Field[T] { return Field[T]{mode: Shared} }

// Write declares an Exclusive (read-write) field for component type T.
func Write[T any]() Field[T] { return Field[T]{mode: Exclusive} }

func (f Field[T]) descriptor() descriptor {
	return descriptor{typ: reflect.TypeFor[T](), mode: f.mode}
}

// value returns a read-only copy of T out of a componentMap's boxed *T.
// Valid for fields of either mode; Shared fields should only ever call
// value, never mut.
func (f Field[T]) value(raw any) T {
	return *raw.(*T)
}

// mut returns the live pointer into storage, for mutation. Calling it on a
// field declared Shared is a contract violation — there is no compile-time
// lifetime system here to forbid it, so it is caught at runtime instead.
func (f Field[T]) mut(raw any) *T {
	if f.mode != Exclusive {
		panic(fmt.Sprintf("ecs: Mut accessor called on a field of %T declared Shared", *new(T)))
	}
	return raw.(*T)
}

// validate rejects a field shape that references the same component type
// more than once, regardless of the modes involved — two Shared
// descriptors for the same type are just as much a construction error as
// a Shared+Exclusive pair.
func validate(descs []descriptor) error {
	seen := make(map[reflect.Type]bool, len(descs))
	for _, d := range descs {
		if seen[d.typ] {
			return fmt.Errorf("ecs: component %s referenced more than once in query: %w", d.typ, ErrDuplicateTypeInQuery)
		}
		seen[d.typ] = true
	}
	return nil
}
