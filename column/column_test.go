package column_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opendta/column"
	"opendta/model"
	"opendta/network"
)

func TestAddOrMerge_DuplicatePathDoesNotDuplicate(t *testing.T) {
	cv := &column.ColumnVec{Q: 100}
	path := []network.NodeIndex{0, 1, 2}

	c1, added1 := cv.AddOrMerge(path, nil)
	require.True(t, added1)
	c1.Volume = 40

	c2, added2 := cv.AddOrMerge(path, nil)
	assert.False(t, added2)
	assert.Same(t, c1, c2)
	assert.Len(t, cv.Columns, 1)
	assert.Equal(t, 40.0, cv.TotalVolume())
}

func TestAddOrMerge_DifferentPathAppends(t *testing.T) {
	cv := &column.ColumnVec{}
	cv.AddOrMerge([]network.NodeIndex{0, 1}, nil)
	cv.AddOrMerge([]network.NodeIndex{0, 2, 1}, nil)
	assert.Len(t, cv.Columns, 2)
}

func TestPool_ShardedByOrigin(t *testing.T) {
	p := column.NewPool(3)
	key := model.ODKey{Origin: 1, Destination: 2, Period: 0, AgentType: 0}
	cv := p.GetOrCreate(key, 50)
	assert.Equal(t, 50.0, cv.Q)

	shard := p.Shard(1)
	assert.Contains(t, shard, key)

	other := p.Shard(0)
	assert.NotContains(t, other, key)
}

func TestPool_KeysAreSortedLexicographically(t *testing.T) {
	p := column.NewPool(2)
	p.GetOrCreate(model.ODKey{Origin: 1, Destination: 0, Period: 1, AgentType: 0}, 1)
	p.GetOrCreate(model.ODKey{Origin: 0, Destination: 1, Period: 0, AgentType: 0}, 1)
	p.GetOrCreate(model.ODKey{Origin: 0, Destination: 0, Period: 0, AgentType: 0}, 1)

	keys := p.Keys()
	require.Len(t, keys, 3)
	assert.Equal(t, network.ZoneIndex(0), keys[0].Origin)
	assert.Equal(t, network.ZoneIndex(0), keys[0].Destination)
	assert.Equal(t, network.ZoneIndex(0), keys[1].Origin)
	assert.Equal(t, network.ZoneIndex(1), keys[1].Destination)
	assert.Equal(t, network.ZoneIndex(1), keys[2].Origin)
}

func TestPool_ResetNewColumnMarkers(t *testing.T) {
	p := column.NewPool(1)
	key := model.ODKey{Origin: 0, Destination: 0, Period: 0, AgentType: 0}
	cv := p.GetOrCreate(key, 10)
	cv.AddOrMerge([]network.NodeIndex{0, 1}, nil)
	require.True(t, cv.NewColumnAdded)

	p.ResetNewColumnMarkers()
	assert.False(t, cv.NewColumnAdded)
}
