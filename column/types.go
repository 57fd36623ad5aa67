package column

import "opendta/network"

// Column is a simple path from an origin zone's anchor to a destination
// zone's anchor, plus its current flow volume, travel time, and a
// gradient-projection scratch value. A Column keeps no separate
// generalized-cost value.
type Column struct {
	Nodes []network.NodeIndex
	Links []network.LinkIndex

	Volume     float64
	TravelTime float64
	Gradient   float64
}

// SamePath reports whether c and other traverse the identical node
// sequence, the equality relation this package uses to identify columns.
func (c *Column) SamePath(nodes []network.NodeIndex) bool {
	if len(c.Nodes) != len(nodes) {
		return false
	}
	for i := range nodes {
		if c.Nodes[i] != nodes[i] {
			return false
		}
	}
	return true
}

// ColumnVec is the set of columns for one OD Key, plus the total OD volume
// and the "new column added this iteration" marker the solver consults.
type ColumnVec struct {
	Columns []*Column

	// Q is the total OD demand volume; sum of Columns[i].Volume must equal
	// Q within 1e-6 at every iteration boundary.
	Q float64

	// NewColumnAdded is set by AddOrMerge when this iteration appended a
	// genuinely new path, and cleared at the start of each outer
	// iteration by the caller.
	NewColumnAdded bool

	// PendingNew holds exactly the columns AddOrMerge appended this
	// iteration, so the MSA redistribution step can identify "new" columns
	// directly instead of inferring it from Volume == 0 — a column whose
	// volume a gradient-projection step has driven down to zero is not
	// new. Cleared alongside NewColumnAdded at the start of each outer
	// iteration.
	PendingNew []*Column
}

// TotalVolume sums every column's current volume.
func (cv *ColumnVec) TotalVolume() float64 {
	var sum float64
	for _, c := range cv.Columns {
		sum += c.Volume
	}
	return sum
}

// AddOrMerge appends a new zero-volume column for the given path unless an
// identical path already exists in cv, in which case cv is left unchanged.
// Returns the column (new or pre-existing) and whether it was newly added.
func (cv *ColumnVec) AddOrMerge(nodes []network.NodeIndex, links []network.LinkIndex) (*Column, bool) {
	for _, c := range cv.Columns {
		if c.SamePath(nodes) {
			return c, false
		}
	}
	c := &Column{Nodes: nodes, Links: links}
	cv.Columns = append(cv.Columns, c)
	cv.NewColumnAdded = true
	cv.PendingNew = append(cv.PendingNew, c)
	return c, true
}
