package network

import "fmt"

// NodeRecord is the loader-facing shape for one row of node.csv.
type NodeRecord struct {
	ID      string
	ZoneID  string // empty if the node belongs to no zone
	X, Y    float64
}

// LinkRecord is the loader-facing shape for one row of link.csv.
type LinkRecord struct {
	ID           string
	FromNodeID   string
	ToNodeID     string
	Length       float64
	Lanes        int
	FreeSpeed    float64
	Capacity     float64
	AllowedUses  []string // tokenized allowed_uses column, "all" kept verbatim
	AlphaBPR     *float64 // nil => default 0.15
	BetaBPR      *float64 // nil => default 4.0
}

// ZoneRecord is the loader-facing shape for a zone declared by node.csv's
// zone_id column (zones are implicit: any zone_id value referenced by a
// node is a zone).
type ZoneRecord struct {
	ID string
}

const (
	defaultAlphaBPR = 0.15
	defaultBetaBPR  = 4.0
)

// Option configures Network construction.
type Option func(*buildConfig)

type buildConfig struct {
	connectorsPerZone int
}

// WithConnectorsPerZone overrides the default k=1 nearest-node count used
// when synthesizing connectors for a zone with no member nodes.
func WithConnectorsPerZone(k int) Option {
	return func(c *buildConfig) {
		if k > 0 {
			c.connectorsPerZone = k
		}
	}
}

// Network is the immutable physical network: nodes, links, and zones, plus
// the adjacency and per-period link state derived from them.
type Network struct {
	Nodes []Node
	Links []Link
	Zones []Zone

	nodeByID map[string]NodeIndex
	linkByID map[string]LinkIndex
	zoneByID map[string]ZoneIndex

	connectorCfg  buildConfig
	zoneCentroids map[ZoneIndex][2]float64

	NumPeriods int
}

// NewFromRecords builds a Network from loader-supplied node and link
// records. Zones are derived from the union of node.ZoneID values plus any
// explicitly listed zone IDs (zones referenced only by demand, not by any
// node, are added via AddZone before Finalize). Connector synthesis is not
// run here; call Finalize once all zones are known.
func NewFromRecords(nodes []NodeRecord, links []LinkRecord, opts ...Option) (*Network, error) {
	cfg := buildConfig{connectorsPerZone: 1}
	for _, o := range opts {
		o(&cfg)
	}

	n := &Network{
		nodeByID: make(map[string]NodeIndex, len(nodes)),
		linkByID: make(map[string]LinkIndex, len(links)),
		zoneByID: make(map[string]ZoneIndex, 8),
	}

	for _, rec := range nodes {
		if _, dup := n.nodeByID[rec.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateNodeID, rec.ID)
		}
		idx := NodeIndex(len(n.Nodes))
		zi := NoZone
		if rec.ZoneID != "" {
			zi = n.ensureZone(rec.ZoneID)
		}
		n.Nodes = append(n.Nodes, Node{
			ID:    rec.ID,
			Index: idx,
			Zone:  zi,
			X:     rec.X,
			Y:     rec.Y,
		})
		n.nodeByID[rec.ID] = idx
		if zi != NoZone {
			z := &n.Zones[zi]
			z.MemberNodes = append(z.MemberNodes, idx)
		}
	}

	for _, rec := range links {
		if _, dup := n.linkByID[rec.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateLinkID, rec.ID)
		}
		tail, ok := n.nodeByID[rec.FromNodeID]
		if !ok {
			return nil, fmt.Errorf("%w: link %s from_node %s", ErrDanglingLink, rec.ID, rec.FromNodeID)
		}
		head, ok := n.nodeByID[rec.ToNodeID]
		if !ok {
			return nil, fmt.Errorf("%w: link %s to_node %s", ErrDanglingLink, rec.ID, rec.ToNodeID)
		}

		alpha := defaultAlphaBPR
		if rec.AlphaBPR != nil {
			alpha = *rec.AlphaBPR
		}
		beta := defaultBetaBPR
		if rec.BetaBPR != nil {
			beta = *rec.BetaBPR
		}

		li := LinkIndex(len(n.Links))
		fftt := freeFlowTravelTime(rec.Length, rec.FreeSpeed)
		n.Links = append(n.Links, Link{
			Index:        li,
			ID:           rec.ID,
			TailNode:     tail,
			HeadNode:     head,
			Length:       rec.Length,
			FreeSpeed:    rec.FreeSpeed,
			Lanes:        rec.Lanes,
			Capacity:     rec.Capacity,
			AlphaBPR:     alpha,
			BetaBPR:      beta,
			allowedNames: rec.AllowedUses,
			FFTT:         fftt,
		})
		n.linkByID[rec.ID] = li

		n.Nodes[tail].Outgoing = append(n.Nodes[tail].Outgoing, li)
		n.Nodes[head].Incoming = append(n.Nodes[head].Incoming, li)
	}

	n.connectorCfg = cfg
	return n, nil
}

// freeFlowTravelTime returns the free-flow travel time in minutes for a
// link of the given length and free-flow speed (same distance unit, per
// hour). A zero-length (e.g. connector) link has zero free-flow time.
func freeFlowTravelTime(length, speed float64) float64 {
	if length <= 0 || speed <= 0 {
		return 0
	}
	return length / speed * 60.0
}

// ensureZone returns the ZoneIndex for id, creating the zone if unseen.
func (n *Network) ensureZone(id string) ZoneIndex {
	if zi, ok := n.zoneByID[id]; ok {
		return zi
	}
	zi := ZoneIndex(len(n.Zones))
	n.Zones = append(n.Zones, Zone{ID: id, Index: zi})
	n.zoneByID[id] = zi
	return zi
}

// AddZone registers a zone that has no member nodes in node.csv (e.g. a
// zone only ever referenced by demand.csv). A no-op if the zone is already
// known. Must be called before Finalize.
func (n *Network) AddZone(id string) ZoneIndex {
	return n.ensureZone(id)
}

// NodeByID returns the node with the given identifier.
func (n *Network) NodeByID(id string) (*Node, bool) {
	idx, ok := n.nodeByID[id]
	if !ok {
		return nil, false
	}
	return &n.Nodes[idx], true
}

// LinkByID returns the link with the given identifier.
func (n *Network) LinkByID(id string) (*Link, bool) {
	idx, ok := n.linkByID[id]
	if !ok {
		return nil, false
	}
	return &n.Links[idx], true
}

// ZoneByID returns the zone with the given identifier.
func (n *Network) ZoneByID(id string) (*Zone, bool) {
	idx, ok := n.zoneByID[id]
	if !ok {
		return nil, false
	}
	return &n.Zones[idx], true
}

// ZoneIndexOf returns the ZoneIndex for id and whether it exists.
func (n *Network) ZoneIndexOf(id string) (ZoneIndex, bool) {
	idx, ok := n.zoneByID[id]
	return idx, ok
}

// ResolveAgentMasks resolves every link's raw allowed_uses tokens against
// the agent-type name table (index position == agent-type index). Must be
// called after all agent types are loaded and before any TDSP search.
// Connectors (synthesized after this call returns) always get the
// all-agents mask rather than inheriting from the links they attach to.
func (n *Network) ResolveAgentMasks(atNames []string) error {
	nameIdx := make(map[string]int, len(atNames))
	for i, name := range atNames {
		nameIdx[name] = i
	}
	all := AllAgentsMask(len(atNames))

	for i := range n.Links {
		l := &n.Links[i]
		if l.IsConnector {
			l.AllowedMask = all
			continue
		}
		var mask AgentMask
		for _, tok := range l.allowedNames {
			if tok == "all" {
				mask = all
				break
			}
			idx, ok := nameIdx[tok]
			if !ok {
				return fmt.Errorf("%w: link %s uses %q", ErrUnknownAgentType, l.ID, tok)
			}
			mask |= 1 << uint(idx)
		}
		if len(l.allowedNames) == 0 {
			mask = all
		}
		l.AllowedMask = mask
	}
	return nil
}

// AllocatePeriods sizes every link's per-period Vol/TT/GC arrays to
// numPeriods and seeds TT=GC=FFTT, Vol=0. Must be called once, after
// ResolveAgentMasks and before the first UE iteration.
func (n *Network) AllocatePeriods(numPeriods int) {
	n.NumPeriods = numPeriods
	for i := range n.Links {
		l := &n.Links[i]
		l.Vol = make([]float64, numPeriods)
		l.TT = make([]float64, numPeriods)
		l.GC = make([]float64, numPeriods)
		for p := 0; p < numPeriods; p++ {
			l.TT[p] = l.FFTT
			l.GC[p] = l.FFTT
		}
	}
}
