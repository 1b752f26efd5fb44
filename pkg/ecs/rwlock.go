package ecs

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// maxReaders bounds how many concurrent Shared holders a rwLock admits; a
// writer acquires the full weight, which blocks until every reader (and any
// other writer) has released. It is large enough that no realistic number
// of concurrent readers on one component type will ever saturate it.
const maxReaders = 1 << 30

// rwLock is a context-cancellable reader/writer lock built on a weighted
// semaphore rather than sync.RWMutex. sync.RWMutex has no way to abandon a
// blocked Lock/RLock call, which the Query Planner needs: if the caller's
// context is cancelled while Iter is waiting on a contended component type,
// the wait must give up and unwind the locks already acquired for that
// call. A single semaphore.Weighted gives both behaviors for free — a
// reader takes weight 1, a writer takes the entire capacity — and its
// Acquire already takes a context.
type rwLock struct {
	sem *semaphore.Weighted
}

func newRWLock() *rwLock {
	return &rwLock{sem: semaphore.NewWeighted(maxReaders)}
}

func (l *rwLock) acquireRead(ctx context.Context) error {
	return l.sem.Acquire(ctx, 1)
}

func (l *rwLock) releaseRead() {
	l.sem.Release(1)
}

func (l *rwLock) acquireWrite(ctx context.Context) error {
	return l.sem.Acquire(ctx, maxReaders)
}

func (l *rwLock) releaseWrite() {
	l.sem.Release(maxReaders)
}
