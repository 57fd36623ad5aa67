package network

import (
	"fmt"
	"math"
)

// Finalize runs connector synthesis and must be called exactly once,
// after every zone is known (via node.csv zone_id values and/or AddZone)
// and before any TDSP search. For every zone it adds a virtual origin node
// and a virtual destination node, plus zero-length infinite-capacity
// connector links:
//
//   - zones with member nodes get connectors directly to/from those nodes.
//   - zones with no member nodes get connectors to/from the k nearest real
//     nodes by Euclidean distance on (X, Y) to the centroid recorded with
//     AddZoneCentroid, k = WithConnectorsPerZone (default 1); without a
//     recorded centroid, the first k real nodes in index order are used.
//
// Returns ErrNoAnchor if a zone cannot be anchored to any node at all (e.g.
// an empty network with no nodes whatsoever).
func (n *Network) Finalize() error {
	for zi := range n.Zones {
		z := &n.Zones[zi]

		anchorTargets := z.MemberNodes
		if len(anchorTargets) == 0 {
			nearest, err := n.nearestNodes(zi, n.connectorCfg.connectorsPerZone)
			if err != nil {
				return err
			}
			anchorTargets = nearest
		}
		if len(anchorTargets) == 0 {
			return fmt.Errorf("%w: zone %s", ErrNoAnchor, z.ID)
		}

		origin := n.addVirtualNode(fmt.Sprintf("%s_origin", z.ID), ZoneIndex(zi))
		dest := n.addVirtualNode(fmt.Sprintf("%s_dest", z.ID), ZoneIndex(zi))
		z.OriginAnchor = origin
		z.DestAnchor = dest

		for _, target := range anchorTargets {
			outLink := n.addConnector(fmt.Sprintf("%s_out_%d", z.ID, target), origin, target)
			inLink := n.addConnector(fmt.Sprintf("%s_in_%d", z.ID, target), target, dest)
			z.ConnectorOut = append(z.ConnectorOut, outLink)
			z.ConnectorIn = append(z.ConnectorIn, inLink)
		}
	}
	return nil
}

// addVirtualNode appends a zone-anchor node with no coordinates of its own.
func (n *Network) addVirtualNode(id string, zone ZoneIndex) NodeIndex {
	idx := NodeIndex(len(n.Nodes))
	n.Nodes = append(n.Nodes, Node{ID: id, Index: idx, Zone: zone, Virtual: true})
	n.nodeByID[id] = idx
	return idx
}

// addConnector appends a zero-length, infinite-capacity link from tail to
// head, allowing every agent type. If AllocatePeriods has already run, the
// connector gets zeroed per-period Vol/TT/GC arrays of the same length.
func (n *Network) addConnector(id string, tail, head NodeIndex) LinkIndex {
	li := LinkIndex(len(n.Links))
	n.Links = append(n.Links, Link{
		Index:       li,
		ID:          id,
		TailNode:    tail,
		HeadNode:    head,
		Length:      0,
		Capacity:    math.MaxFloat64,
		AlphaBPR:    defaultAlphaBPR,
		BetaBPR:     defaultBetaBPR,
		AllowedMask: AllAgentsMask(32),
		IsConnector: true,
		FFTT:        0,
	})
	if n.NumPeriods > 0 {
		c := &n.Links[li]
		c.Vol = make([]float64, n.NumPeriods)
		c.TT = make([]float64, n.NumPeriods)
		c.GC = make([]float64, n.NumPeriods)
	}
	n.linkByID[id] = li
	n.Nodes[tail].Outgoing = append(n.Nodes[tail].Outgoing, li)
	n.Nodes[head].Incoming = append(n.Nodes[head].Incoming, li)
	return li
}

// nearestNodes returns up to k real (non-virtual) node indices closest to
// the centroid implied by... a zone with no member nodes has no coordinate
// of its own, so "nearest" is computed against the zone's declared id only
// if the loader attached a centroid via AddZoneCentroid; absent that, every
// real node is equally unanchored and nearestNodes falls back to the first
// k nodes in index order, which keeps Finalize total and deterministic
// rather than failing a zone outright.
func (n *Network) nearestNodes(zi int, k int) ([]NodeIndex, error) {
	if k <= 0 {
		k = 1
	}
	centroid, ok := n.zoneCentroids[ZoneIndex(zi)]
	if !ok {
		// No centroid known: deterministic fallback, ascending node index.
		var out []NodeIndex
		for i := range n.Nodes {
			if n.Nodes[i].Virtual {
				continue
			}
			out = append(out, n.Nodes[i].Index)
			if len(out) == k {
				break
			}
		}
		return out, nil
	}
	cx, cy := centroid[0], centroid[1]

	type cand struct {
		idx  NodeIndex
		dist float64
	}
	cands := make([]cand, 0, len(n.Nodes))
	for i := range n.Nodes {
		if n.Nodes[i].Virtual {
			continue
		}
		dx := n.Nodes[i].X - cx
		dy := n.Nodes[i].Y - cy
		cands = append(cands, cand{idx: n.Nodes[i].Index, dist: dx*dx + dy*dy})
	}
	// Selection sort over the (small, k-bounded) prefix is sufficient here:
	// k is a handful of connectors per zone, not a hot path.
	for i := 0; i < k && i < len(cands); i++ {
		minJ := i
		for j := i + 1; j < len(cands); j++ {
			if cands[j].dist < cands[minJ].dist {
				minJ = j
			}
		}
		cands[i], cands[minJ] = cands[minJ], cands[i]
	}
	limit := k
	if limit > len(cands) {
		limit = len(cands)
	}
	out := make([]NodeIndex, limit)
	for i := 0; i < limit; i++ {
		out[i] = cands[i].idx
	}
	return out, nil
}

// AddZoneCentroid records an externally-computed centroid (X, Y) for a
// zone with no member nodes, used by nearestNodes. The core never parses
// geometry itself (that's an external collaborator's job); this is the
// seam that collaborator feeds.
func (n *Network) AddZoneCentroid(zi ZoneIndex, x, y float64) {
	if n.zoneCentroids == nil {
		n.zoneCentroids = make(map[ZoneIndex][2]float64)
	}
	n.zoneCentroids[zi] = [2]float64{x, y}
}
