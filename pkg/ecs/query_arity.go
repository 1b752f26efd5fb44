package ecs

import "context"

// This file provides the typed Query1..Query8 / Iterator1..Iterator8
// family. Go has no variadic generics, so tuple-shape polymorphism is
// realized as one hand-written arm per supported arity (1 through 8)
// instead of a single generic over a tuple type. Every arm is a thin
// wrapper: all locking, candidate-set construction and lock ordering
// lives once in coreQuery/coreIterator (query.go); each QueryN only
// stores its Field[X] values (to know how to unbox raw values back into
// typed accessors) and forwards to the core engine.

// Query1 is a one-field query over component type A.
type Query1[A any] struct {
	core *coreQuery
	fa   Field[A]
}

// NewQuery1 constructs a one-field query. A single field cannot repeat a
// component type, so it never returns ErrDuplicateTypeInQuery; the error
// result keeps it symmetric with the other constructors.
func NewQuery1[A any](reg *Registry, storage *Storage, fa Field[A]) (*Query1[A], error) {
	core, err := newCoreQuery(reg, storage, []descriptor{fa.descriptor()})
	if err != nil {
		return nil, err
	}
	return &Query1[A]{core: core, fa: fa}, nil
}

// Iter begins one iteration pass, acquiring every field's component lock.
func (q *Query1[A]) Iter(ctx context.Context) (*Iterator1[A], error) {
	it, err := q.core.iter(ctx)
	if err != nil {
		return nil, err
	}
	return &Iterator1[A]{core: it, fa: q.fa}, nil
}

// Iterator1 yields matching entities one at a time via Next.
type Iterator1[A any] struct {
	core *coreIterator
	fa   Field[A]
	e    Entity
	raws []any
}

// Next advances to the next matching entity. Call Entity/A/AMut only after
// Next has returned true.
func (it *Iterator1[A]) Next() bool {
	e, raws, ok := it.core.next()
	if !ok {
		return false
	}
	it.e, it.raws = e, raws
	return true
}

// Entity returns the current entity.
func (it *Iterator1[A]) Entity() Entity { return it.e }

// A returns a read-only copy of the current entity's component A.
func (it *Iterator1[A]) A() A { return it.fa.value(it.raws[0]) }

// AMut returns a mutable pointer to the current entity's component A. Valid
// only if the field was declared with Write[A]; otherwise panics.
func (it *Iterator1[A]) AMut() *A { return it.fa.mut(it.raws[0]) }

// Close releases every lock this iterator holds. Idempotent.
func (it *Iterator1[A]) Close() { it.core.release() }

// ---- arity 2 ----

type Query2[A, B any] struct {
	core   *coreQuery
	fa     Field[A]
	fb     Field[B]
}

func NewQuery2[A, B any](reg *Registry, storage *Storage, fa Field[A], fb Field[B]) (*Query2[A, B], error) {
	core, err := newCoreQuery(reg, storage, []descriptor{fa.descriptor(), fb.descriptor()})
	if err != nil {
		return nil, err
	}
	return &Query2[A, B]{core: core, fa: fa, fb: fb}, nil
}

func (q *Query2[A, B]) Iter(ctx context.Context) (*Iterator2[A, B], error) {
	it, err := q.core.iter(ctx)
	if err != nil {
		return nil, err
	}
	return &Iterator2[A, B]{core: it, fa: q.fa, fb: q.fb}, nil
}

type Iterator2[A, B any] struct {
	core *coreIterator
	fa   Field[A]
	fb   Field[B]
	e    Entity
	raws []any
}

func (it *Iterator2[A, B]) Next() bool {
	e, raws, ok := it.core.next()
	if !ok {
		return false
	}
	it.e, it.raws = e, raws
	return true
}

func (it *Iterator2[A, B]) Entity() Entity { return it.e }
func (it *Iterator2[A, B]) A() A           { return it.fa.value(it.raws[0]) }
func (it *Iterator2[A, B]) AMut() *A       { return it.fa.mut(it.raws[0]) }
func (it *Iterator2[A, B]) B() B           { return it.fb.value(it.raws[1]) }
func (it *Iterator2[A, B]) BMut() *B       { return it.fb.mut(it.raws[1]) }
func (it *Iterator2[A, B]) Close()         { it.core.release() }

// ---- arity 3 ----

type Query3[A, B, C any] struct {
	core *coreQuery
	fa   Field[A]
	fb   Field[B]
	fc   Field[C]
}

func NewQuery3[A, B, C any](reg *Registry, storage *Storage, fa Field[A], fb Field[B], fc Field[C]) (*Query3[A, B, C], error) {
	core, err := newCoreQuery(reg, storage, []descriptor{fa.descriptor(), fb.descriptor(), fc.descriptor()})
	if err != nil {
		return nil, err
	}
	return &Query3[A, B, C]{core: core, fa: fa, fb: fb, fc: fc}, nil
}

func (q *Query3[A, B, C]) Iter(ctx context.Context) (*Iterator3[A, B, C], error) {
	it, err := q.core.iter(ctx)
	if err != nil {
		return nil, err
	}
	return &Iterator3[A, B, C]{core: it, fa: q.fa, fb: q.fb, fc: q.fc}, nil
}

type Iterator3[A, B, C any] struct {
	core *coreIterator
	fa   Field[A]
	fb   Field[B]
	fc   Field[C]
	e    Entity
	raws []any
}

func (it *Iterator3[A, B, C]) Next() bool {
	e, raws, ok := it.core.next()
	if !ok {
		return false
	}
	it.e, it.raws = e, raws
	return true
}

func (it *Iterator3[A, B, C]) Entity() Entity { return it.e }
func (it *Iterator3[A, B, C]) A() A           { return it.fa.value(it.raws[0]) }
func (it *Iterator3[A, B, C]) AMut() *A       { return it.fa.mut(it.raws[0]) }
func (it *Iterator3[A, B, C]) B() B           { return it.fb.value(it.raws[1]) }
func (it *Iterator3[A, B, C]) BMut() *B       { return it.fb.mut(it.raws[1]) }
func (it *Iterator3[A, B, C]) C() C           { return it.fc.value(it.raws[2]) }
func (it *Iterator3[A, B, C]) CMut() *C       { return it.fc.mut(it.raws[2]) }
func (it *Iterator3[A, B, C]) Close()         { it.core.release() }

// ---- arity 4 ----

type Query4[A, B, C, D any] struct {
	core *coreQuery
	fa   Field[A]
	fb   Field[B]
	fc   Field[C]
	fd   Field[D]
}

func NewQuery4[A, B, C, D any](reg *Registry, storage *Storage, fa Field[A], fb Field[B], fc Field[C], fd Field[D]) (*Query4[A, B, C, D], error) {
	core, err := newCoreQuery(reg, storage, []descriptor{fa.descriptor(), fb.descriptor(), fc.descriptor(), fd.descriptor()})
	if err != nil {
		return nil, err
	}
	return &Query4[A, B, C, D]{core: core, fa: fa, fb: fb, fc: fc, fd: fd}, nil
}

func (q *Query4[A, B, C, D]) Iter(ctx context.Context) (*Iterator4[A, B, C, D], error) {
	it, err := q.core.iter(ctx)
	if err != nil {
		return nil, err
	}
	return &Iterator4[A, B, C, D]{core: it, fa: q.fa, fb: q.fb, fc: q.fc, fd: q.fd}, nil
}

type Iterator4[A, B, C, D any] struct {
	core *coreIterator
	fa   Field[A]
	fb   Field[B]
	fc   Field[C]
	fd   Field[D]
	e    Entity
	raws []any
}

func (it *Iterator4[A, B, C, D]) Next() bool {
	e, raws, ok := it.core.next()
	if !ok {
		return false
	}
	it.e, it.raws = e, raws
	return true
}

func (it *Iterator4[A, B, C, D]) Entity() Entity { return it.e }
func (it *Iterator4[A, B, C, D]) A() A           { return it.fa.value(it.raws[0]) }
func (it *Iterator4[A, B, C, D]) AMut() *A       { return it.fa.mut(it.raws[0]) }
func (it *Iterator4[A, B, C, D]) B() B           { return it.fb.value(it.raws[1]) }
func (it *Iterator4[A, B, C, D]) BMut() *B       { return it.fb.mut(it.raws[1]) }
func (it *Iterator4[A, B, C, D]) C() C           { return it.fc.value(it.raws[2]) }
func (it *Iterator4[A, B, C, D]) CMut() *C       { return it.fc.mut(it.raws[2]) }
func (it *Iterator4[A, B, C, D]) D() D           { return it.fd.value(it.raws[3]) }
func (it *Iterator4[A, B, C, D]) DMut() *D       { return it.fd.mut(it.raws[3]) }
func (it *Iterator4[A, B, C, D]) Close()         { it.core.release() }

// ---- arity 5 ----

type Query5[A, B, C, D, E any] struct {
	core *coreQuery
	fa   Field[A]
	fb   Field[B]
	fc   Field[C]
	fd   Field[D]
	fe   Field[E]
}

func NewQuery5[A, B, C, D, E any](reg *Registry, storage *Storage, fa Field[A], fb Field[B], fc Field[C], fd Field[D], fe Field[E]) (*Query5[A, B, C, D, E], error) {
	core, err := newCoreQuery(reg, storage, []descriptor{fa.descriptor(), fb.descriptor(), fc.descriptor(), fd.descriptor(), fe.descriptor()})
	if err != nil {
		return nil, err
	}
	return &Query5[A, B, C, D, E]{core: core, fa: fa, fb: fb, fc: fc, fd: fd, fe: fe}, nil
}

func (q *Query5[A, B, C, D, E]) Iter(ctx context.Context) (*Iterator5[A, B, C, D, E], error) {
	it, err := q.core.iter(ctx)
	if err != nil {
		return nil, err
	}
	return &Iterator5[A, B, C, D, E]{core: it, fa: q.fa, fb: q.fb, fc: q.fc, fd: q.fd, fe: q.fe}, nil
}

type Iterator5[A, B, C, D, E any] struct {
	core *coreIterator
	fa   Field[A]
	fb   Field[B]
	fc   Field[C]
	fd   Field[D]
	fe   Field[E]
	ent  Entity
	raws []any
}

func (it *Iterator5[A, B, C, D, E]) Next() bool {
	e, raws, ok := it.core.next()
	if !ok {
		return false
	}
	it.ent, it.raws = e, raws
	return true
}

func (it *Iterator5[A, B, C, D, E]) Entity() Entity { return it.ent }
func (it *Iterator5[A, B, C, D, E]) A() A           { return it.fa.value(it.raws[0]) }
func (it *Iterator5[A, B, C, D, E]) AMut() *A       { return it.fa.mut(it.raws[0]) }
func (it *Iterator5[A, B, C, D, E]) B() B           { return it.fb.value(it.raws[1]) }
func (it *Iterator5[A, B, C, D, E]) BMut() *B       { return it.fb.mut(it.raws[1]) }
func (it *Iterator5[A, B, C, D, E]) C() C           { return it.fc.value(it.raws[2]) }
func (it *Iterator5[A, B, C, D, E]) CMut() *C       { return it.fc.mut(it.raws[2]) }
func (it *Iterator5[A, B, C, D, E]) D() D           { return it.fd.value(it.raws[3]) }
func (it *Iterator5[A, B, C, D, E]) DMut() *D       { return it.fd.mut(it.raws[3]) }
func (it *Iterator5[A, B, C, D, E]) E() E           { return it.fe.value(it.raws[4]) }
func (it *Iterator5[A, B, C, D, E]) EMut() *E       { return it.fe.mut(it.raws[4]) }
func (it *Iterator5[A, B, C, D, E]) Close()         { it.core.release() }

// ---- arity 6 ----

type Query6[A, B, C, D, E, F any] struct {
	core *coreQuery
	fa   Field[A]
	fb   Field[B]
	fc   Field[C]
	fd   Field[D]
	fe   Field[E]
	ff   Field[F]
}

func NewQuery6[A, B, C, D, E, F any](reg *Registry, storage *Storage, fa Field[A], fb Field[B], fc Field[C], fd Field[D], fe Field[E], ff Field[F]) (*Query6[A, B, C, D, E, F], error) {
	core, err := newCoreQuery(reg, storage, []descriptor{fa.descriptor(), fb.descriptor(), fc.descriptor(), fd.descriptor(), fe.descriptor(), ff.descriptor()})
	if err != nil {
		return nil, err
	}
	return &Query6[A, B, C, D, E, F]{core: core, fa: fa, fb: fb, fc: fc, fd: fd, fe: fe, ff: ff}, nil
}

func (q *Query6[A, B, C, D, E, F]) Iter(ctx context.Context) (*Iterator6[A, B, C, D, E, F], error) {
	it, err := q.core.iter(ctx)
	if err != nil {
		return nil, err
	}
	return &Iterator6[A, B, C, D, E, F]{core: it, fa: q.fa, fb: q.fb, fc: q.fc, fd: q.fd, fe: q.fe, ff: q.ff}, nil
}

type Iterator6[A, B, C, D, E, F any] struct {
	core *coreIterator
	fa   Field[A]
	fb   Field[B]
	fc   Field[C]
	fd   Field[D]
	fe   Field[E]
	ff   Field[F]
	ent  Entity
	raws []any
}

func (it *Iterator6[A, B, C, D, E, F]) Next() bool {
	e, raws, ok := it.core.next()
	if !ok {
		return false
	}
	it.ent, it.raws = e, raws
	return true
}

func (it *Iterator6[A, B, C, D, E, F]) Entity() Entity { return it.ent }
func (it *Iterator6[A, B, C, D, E, F]) A() A           { return it.fa.value(it.raws[0]) }
func (it *Iterator6[A, B, C, D, E, F]) AMut() *A       { return it.fa.mut(it.raws[0]) }
func (it *Iterator6[A, B, C, D, E, F]) B() B           { return it.fb.value(it.raws[1]) }
func (it *Iterator6[A, B, C, D, E, F]) BMut() *B       { return it.fb.mut(it.raws[1]) }
func (it *Iterator6[A, B, C, D, E, F]) C() C           { return it.fc.value(it.raws[2]) }
func (it *Iterator6[A, B, C, D, E, F]) CMut() *C       { return it.fc.mut(it.raws[2]) }
func (it *Iterator6[A, B, C, D, E, F]) D() D           { return it.fd.value(it.raws[3]) }
func (it *Iterator6[A, B, C, D, E, F]) DMut() *D       { return it.fd.mut(it.raws[3]) }
func (it *Iterator6[A, B, C, D, E, F]) E() E           { return it.fe.value(it.raws[4]) }
func (it *Iterator6[A, B, C, D, E, F]) EMut() *E       { return it.fe.mut(it.raws[4]) }
func (it *Iterator6[A, B, C, D, E, F]) F() F           { return it.ff.value(it.raws[5]) }
func (it *Iterator6[A, B, C, D, E, F]) FMut() *F       { return it.ff.mut(it.raws[5]) }
func (it *Iterator6[A, B, C, D, E, F]) Close()         { it.core.release() }

// ---- arity 7 ----

type Query7[A, B, C, D, E, F, G any] struct {
	core *coreQuery
	fa   Field[A]
	fb   Field[B]
	fc   Field[C]
	fd   Field[D]
	fe   Field[E]
	ff   Field[F]
	fg   Field[G]
}

func NewQuery7[A, B, C, D, E, F, G any](reg *Registry, storage *Storage, fa Field[A], fb Field[B], fc Field[C], fd Field[D], fe Field[E], ff Field[F], fg Field[G]) (*Query7[A, B, C, D, E, F, G], error) {
	core, err := newCoreQuery(reg, storage, []descriptor{fa.descriptor(), fb.descriptor(), fc.descriptor(), fd.descriptor(), fe.descriptor(), ff.descriptor(), fg.descriptor()})
	if err != nil {
		return nil, err
	}
	return &Query7[A, B, C, D, E, F, G]{core: core, fa: fa, fb: fb, fc: fc, fd: fd, fe: fe, ff: ff, fg: fg}, nil
}

func (q *Query7[A, B, C, D, E, F, G]) Iter(ctx context.Context) (*Iterator7[A, B, C, D, E, F, G], error) {
	it, err := q.core.iter(ctx)
	if err != nil {
		return nil, err
	}
	return &Iterator7[A, B, C, D, E, F, G]{core: it, fa: q.fa, fb: q.fb, fc: q.fc, fd: q.fd, fe: q.fe, ff: q.ff, fg: q.fg}, nil
}

type Iterator7[A, B, C, D, E, F, G any] struct {
	core *coreIterator
	fa   Field[A]
	fb   Field[B]
	fc   Field[C]
	fd   Field[D]
	fe   Field[E]
	ff   Field[F]
	fg   Field[G]
	ent  Entity
	raws []any
}

func (it *Iterator7[A, B, C, D, E, F, G]) Next() bool {
	e, raws, ok := it.core.next()
	if !ok {
		return false
	}
	it.ent, it.raws = e, raws
	return true
}

func (it *Iterator7[A, B, C, D, E, F, G]) Entity() Entity { return it.ent }
func (it *Iterator7[A, B, C, D, E, F, G]) A() A           { return it.fa.value(it.raws[0]) }
func (it *Iterator7[A, B, C, D, E, F, G]) AMut() *A       { return it.fa.mut(it.raws[0]) }
func (it *Iterator7[A, B, C, D, E, F, G]) B() B           { return it.fb.value(it.raws[1]) }
func (it *Iterator7[A, B, C, D, E, F, G]) BMut() *B       { return it.fb.mut(it.raws[1]) }
func (it *Iterator7[A, B, C, D, E, F, G]) C() C           { return it.fc.value(it.raws[2]) }
func (it *Iterator7[A, B, C, D, E, F, G]) CMut() *C       { return it.fc.mut(it.raws[2]) }
func (it *Iterator7[A, B, C, D, E, F, G]) D() D           { return it.fd.value(it.raws[3]) }
func (it *Iterator7[A, B, C, D, E, F, G]) DMut() *D       { return it.fd.mut(it.raws[3]) }
func (it *Iterator7[A, B, C, D, E, F, G]) E() E           { return it.fe.value(it.raws[4]) }
func (it *Iterator7[A, B, C, D, E, F, G]) EMut() *E       { return it.fe.mut(it.raws[4]) }
func (it *Iterator7[A, B, C, D, E, F, G]) F() F           { return it.ff.value(it.raws[5]) }
func (it *Iterator7[A, B, C, D, E, F, G]) FMut() *F       { return it.ff.mut(it.raws[5]) }
func (it *Iterator7[A, B, C, D, E, F, G]) G() G           { return it.fg.value(it.raws[6]) }
func (it *Iterator7[A, B, C, D, E, F, G]) GMut() *G       { return it.fg.mut(it.raws[6]) }
func (it *Iterator7[A, B, C, D, E, F, G]) Close()         { it.core.release() }

// ---- arity 8 ----

type Query8[A, B, C, D, E, F, G, H any] struct {
	core *coreQuery
	fa   Field[A]
	fb   Field[B]
	fc   Field[C]
	fd   Field[D]
	fe   Field[E]
	ff   Field[F]
	fg   Field[G]
	fh   Field[H]
}

func NewQuery8[A, B, C, D, E, F, G, H any](reg *Registry, storage *Storage, fa Field[A], fb Field[B], fc Field[C], fd Field[D], fe Field[E], ff Field[F], fg Field[G], fh Field[H]) (*Query8[A, B, C, D, E, F, G, H], error) {
	core, err := newCoreQuery(reg, storage, []descriptor{fa.descriptor(), fb.descriptor(), fc.descriptor(), fd.descriptor(), fe.descriptor(), ff.descriptor(), fg.descriptor(), fh.descriptor()})
	if err != nil {
		return nil, err
	}
	return &Query8[A, B, C, D, E, F, G, H]{core: core, fa: fa, fb: fb, fc: fc, fd: fd, fe: fe, ff: ff, fg: fg, fh: fh}, nil
}

func (q *Query8[A, B, C, D, E, F, G, H]) Iter(ctx context.Context) (*Iterator8[A, B, C, D, E, F, G, H], error) {
	it, err := q.core.iter(ctx)
	if err != nil {
		return nil, err
	}
	return &Iterator8[A, B, C, D, E, F, G, H]{core: it, fa: q.fa, fb: q.fb, fc: q.fc, fd: q.fd, fe: q.fe, ff: q.ff, fg: q.fg, fh: q.fh}, nil
}

type Iterator8[A, B, C, D, E, F, G, H any] struct {
	core *coreIterator
	fa   Field[A]
	fb   Field[B]
	fc   Field[C]
	fd   Field[D]
	fe   Field[E]
	ff   Field[F]
	fg   Field[G]
	fh   Field[H]
	ent  Entity
	raws []any
}

func (it *Iterator8[A, B, C, D, E, F, G, H]) Next() bool {
	e, raws, ok := it.core.next()
	if !ok {
		return false
	}
	it.ent, it.raws = e, raws
	return true
}

func (it *Iterator8[A, B, C, D, E, F, G, H]) Entity() Entity { return it.ent }
func (it *Iterator8[A, B, C, D, E, F, G, H]) A() A           { return it.fa.value(it.raws[0]) }
func (it *Iterator8[A, B, C, D, E, F, G, H]) AMut() *A       { return it.fa.mut(it.raws[0]) }
func (it *Iterator8[A, B, C, D, E, F, G, H]) B() B           { return it.fb.value(it.raws[1]) }
func (it *Iterator8[A, B, C, D, E, F, G, H]) BMut() *B       { return it.fb.mut(it.raws[1]) }
func (it *Iterator8[A, B, C, D, E, F, G, H]) C() C           { return it.fc.value(it.raws[2]) }
func (it *Iterator8[A, B, C, D, E, F, G, H]) CMut() *C       { return it.fc.mut(it.raws[2]) }
func (it *Iterator8[A, B, C, D, E, F, G, H]) D() D           { return it.fd.value(it.raws[3]) }
func (it *Iterator8[A, B, C, D, E, F, G, H]) DMut() *D       { return it.fd.mut(it.raws[3]) }
func (it *Iterator8[A, B, C, D, E, F, G, H]) E() E           { return it.fe.value(it.raws[4]) }
func (it *Iterator8[A, B, C, D, E, F, G, H]) EMut() *E       { return it.fe.mut(it.raws[4]) }
func (it *Iterator8[A, B, C, D, E, F, G, H]) F() F           { return it.ff.value(it.raws[5]) }
func (it *Iterator8[A, B, C, D, E, F, G, H]) FMut() *F       { return it.ff.mut(it.raws[5]) }
func (it *Iterator8[A, B, C, D, E, F, G, H]) G() G           { return it.fg.value(it.raws[6]) }
func (it *Iterator8[A, B, C, D, E, F, G, H]) GMut() *G       { return it.fg.mut(it.raws[6]) }
func (it *Iterator8[A, B, C, D, E, F, G, H]) H() H           { return it.fh.value(it.raws[7]) }
func (it *Iterator8[A, B, C, D, E, F, G, H]) HMut() *H       { return it.fh.mut(it.raws[7]) }
func (it *Iterator8[A, B, C, D, E, F, G, H]) Close()         { it.core.release() }
