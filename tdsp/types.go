package tdsp

import "opendta/network"

// Result holds one origin zone's shortest-path labels for one (period,
// agent type) pair, indexed by network.NodeIndex.
type Result struct {
	// Dist is the generalized cost from the origin anchor; math.Inf(1)
	// for unreached nodes.
	Dist []float64

	// PredLink is the link used to reach each node on its shortest path;
	// -1 for the origin anchor and for unreached nodes.
	PredLink []network.LinkIndex
}

// Unreached is the PredLink sentinel for the origin and for nodes with no
// finite-cost path.
const Unreached network.LinkIndex = -1

// Reachable reports whether node n has a finite-cost path from the origin.
func (r *Result) Reachable(n network.NodeIndex) bool {
	return r.Dist[n] < posInf
}

// NodePath reconstructs the node sequence from the origin anchor to dest,
// walking PredLink backwards. Returns (nil, false) if dest is unreached.
func (r *Result) NodePath(net *network.Network, dest network.NodeIndex) ([]network.NodeIndex, bool) {
	if !r.Reachable(dest) {
		return nil, false
	}
	var revNodes []network.NodeIndex
	cur := dest
	revNodes = append(revNodes, cur)
	for r.PredLink[cur] != Unreached {
		link := net.Links[r.PredLink[cur]]
		cur = link.TailNode
		revNodes = append(revNodes, cur)
	}
	// revNodes is dest..origin; reverse in place.
	for i, j := 0, len(revNodes)-1; i < j; i, j = i+1, j-1 {
		revNodes[i], revNodes[j] = revNodes[j], revNodes[i]
	}
	return revNodes, true
}

// LinkPath reconstructs the link sequence from the origin anchor to dest.
// Returns (nil, false) if dest is unreached.
func (r *Result) LinkPath(net *network.Network, dest network.NodeIndex) ([]network.LinkIndex, bool) {
	if !r.Reachable(dest) {
		return nil, false
	}
	var revLinks []network.LinkIndex
	cur := dest
	for r.PredLink[cur] != Unreached {
		li := r.PredLink[cur]
		revLinks = append(revLinks, li)
		cur = net.Links[li].TailNode
	}
	for i, j := 0, len(revLinks)-1; i < j; i, j = i+1, j-1 {
		revLinks[i], revLinks[j] = revLinks[j], revLinks[i]
	}
	return revLinks, true
}
