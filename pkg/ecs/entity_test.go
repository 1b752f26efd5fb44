package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryCreateAssignsDistinctIDs(t *testing.T) {
	reg := NewRegistry()
	a := reg.Create()
	b := reg.Create()
	assert.NotEqual(t, a, b)
	assert.True(t, reg.Live(a))
	assert.True(t, reg.Live(b))
	assert.Equal(t, 2, reg.Count())
}

func TestRegistryDestroyMarksNotLive(t *testing.T) {
	reg := NewRegistry()
	e := reg.Create()

	assert.True(t, reg.Destroy(e))
	assert.False(t, reg.Live(e))
	assert.Equal(t, 0, reg.Count())
}

func TestRegistryDestroyUnknownEntityReturnsFalse(t *testing.T) {
	reg := NewRegistry()
	assert.False(t, reg.Destroy(Entity(999)))
}

func TestRegistrySnapshotIsIndependentCopy(t *testing.T) {
	reg := NewRegistry()
	e1 := reg.Create()
	snap := reg.Snapshot()
	reg.Create()

	assert.ElementsMatch(t, []Entity{e1}, snap)
	assert.Equal(t, 2, reg.Count())
}
