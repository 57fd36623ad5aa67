package column

import (
	"sort"

	"opendta/model"
	"opendta/network"
)

// Pool is the full column pool, sharded by origin zone index.
type Pool struct {
	shards []map[model.ODKey]*ColumnVec
}

// NewPool allocates an empty pool with one shard per zone.
func NewPool(numZones int) *Pool {
	p := &Pool{shards: make([]map[model.ODKey]*ColumnVec, numZones)}
	for i := range p.shards {
		p.shards[i] = make(map[model.ODKey]*ColumnVec)
	}
	return p
}

// Shard returns the map owned exclusively by origin zone z, for the
// duration of one parallel TDSP phase.
func (p *Pool) Shard(z network.ZoneIndex) map[model.ODKey]*ColumnVec {
	return p.shards[z]
}

// NumShards returns the number of origin-zone shards (== zone count).
func (p *Pool) NumShards() int {
	return len(p.shards)
}

// Get returns the ColumnVec for key, if present.
func (p *Pool) Get(key model.ODKey) (*ColumnVec, bool) {
	cv, ok := p.shards[key.Origin][key]
	return cv, ok
}

// GetOrCreate returns the ColumnVec for key, creating an empty one with
// total demand q if absent.
func (p *Pool) GetOrCreate(key model.ODKey, q float64) *ColumnVec {
	shard := p.shards[key.Origin]
	cv, ok := shard[key]
	if !ok {
		cv = &ColumnVec{Q: q}
		shard[key] = cv
	}
	return cv
}

// Keys returns every OD Key in the pool in ascending lexicographic order
// (origin, destination, period, agent type), the stable order required
// for reproducible gradient-projection updates.
func (p *Pool) Keys() []model.ODKey {
	var keys []model.ODKey
	for _, shard := range p.shards {
		for k := range shard {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}

// ResetNewColumnMarkers clears NewColumnAdded and PendingNew on every
// ColumnVec, called at the start of each outer column-generation
// iteration.
func (p *Pool) ResetNewColumnMarkers() {
	for _, shard := range p.shards {
		for _, cv := range shard {
			cv.NewColumnAdded = false
			cv.PendingNew = nil
		}
	}
}
