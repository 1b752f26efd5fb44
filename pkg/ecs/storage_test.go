package ecs

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type position struct{ X, Y float64 }

type dropCounter struct {
	n *int32
}

func (d dropCounter) Close() { atomic.AddInt32(d.n, 1) }

func TestInsertAndContains(t *testing.T) {
	s := NewStorage()
	e := Entity(1)

	require.NoError(t, Insert(s, e, position{1, 2}))
	ok, err := Contains[position](s, e)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Contains[position](s, Entity(2))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOverwriteDropsPreviousValueExactlyOnce(t *testing.T) {
	s := NewStorage()
	e := Entity(1)
	var drops int32

	require.NoError(t, Insert(s, e, dropCounter{&drops}))
	require.NoError(t, Insert(s, e, dropCounter{&drops}))

	assert.Equal(t, int32(1), atomic.LoadInt32(&drops))
}

func TestRemoveAbsentComponentIsNoop(t *testing.T) {
	s := NewStorage()
	_, found, err := Remove[position](s, Entity(42))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRemoveReturnsValueAndDropsItOnce(t *testing.T) {
	s := NewStorage()
	e := Entity(1)
	var drops int32
	require.NoError(t, Insert(s, e, dropCounter{&drops}))

	got, found, err := Remove[dropCounter](s, e)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int32(1), atomic.LoadInt32(&drops))
	_ = got
}

func TestStorageCloseDropsEveryComponentExactlyOnce(t *testing.T) {
	s := NewStorage()
	var drops int32
	for i := 0; i < 10; i++ {
		require.NoError(t, Insert(s, Entity(i), dropCounter{&drops}))
	}
	s.Close()
	assert.Equal(t, int32(10), atomic.LoadInt32(&drops))
}

func TestWithWriteLockMutatesInPlace(t *testing.T) {
	s := NewStorage()
	e := Entity(1)
	require.NoError(t, Insert(s, e, position{X: 1}))

	err := WithWriteLock[position](context.Background(), s, func(view map[Entity]*position) error {
		view[e].X = 99
		return nil
	})
	require.NoError(t, err)

	err = WithReadLock[position](context.Background(), s, func(view map[Entity]position) error {
		assert.Equal(t, 99.0, view[e].X)
		return nil
	})
	require.NoError(t, err)
}

func TestPoisonedComponentMapRejectsFurtherAccess(t *testing.T) {
	s := NewStorage()
	e := Entity(1)
	require.NoError(t, Insert(s, e, position{}))

	func() {
		defer func() { recover() }()
		_ = WithWriteLock[position](context.Background(), s, func(view map[Entity]*position) error {
			panic("boom")
		})
	}()

	_, err := Contains[position](s, e)
	assert.ErrorIs(t, err, ErrLockPoisoned)
}

func TestConcurrentInsertsAcrossEntitiesDoNotRace(t *testing.T) {
	s := NewStorage()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = Insert(s, Entity(i), position{X: float64(i)})
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 100, Len[position](s))
}
