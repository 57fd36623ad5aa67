package network

// NodeIndex is a dense, 0-based index into Network.Nodes.
type NodeIndex int

// LinkIndex is a dense, 0-based index into Network.Links.
type LinkIndex int

// ZoneIndex is a dense, 0-based index into Network.Zones. Stored as a
// plain int since Go slice indices are int; real networks never
// approach even the unsigned-short range.
type ZoneIndex int

// NoZone is the ZoneIndex sentinel for a node that belongs to no zone.
const NoZone ZoneIndex = -1

// AgentMask is a bitmask over agent-type indices; bit i set means the link
// allows agent type i. Up to 32 agent types are supported per run, which
// comfortably covers the "auto"/"truck"/... vocabulary real networks use.
type AgentMask uint32

// AllAgentsMask returns a mask with the low n bits set, used for links (and
// connectors) whose allowed_uses is "all".
func AllAgentsMask(n int) AgentMask {
	if n <= 0 {
		return 0
	}
	if n >= 32 {
		return ^AgentMask(0)
	}
	return AgentMask(1)<<uint(n) - 1
}

// Allows reports whether the mask permits agent-type index t.
func (m AgentMask) Allows(t int) bool {
	if t < 0 || t >= 32 {
		return false
	}
	return m&(1<<uint(t)) != 0
}

// Node is a physical or virtual (zone-anchor) vertex. Immutable after
// Network.Finalize.
type Node struct {
	ID       string
	Index    NodeIndex
	Zone     ZoneIndex // NoZone if not a zone member
	X, Y     float64   // opaque coordinates, passed through from the loader
	Outgoing []LinkIndex
	Incoming []LinkIndex

	// Virtual marks a zone-anchor node synthesized by Finalize rather than
	// loaded from node.csv.
	Virtual bool
}

// Link is a directed arc of the physical network, including synthesized
// zero-length connectors. Static fields are immutable after Finalize;
// Vol/TT/GC are the per-demand-period derived state mutated by the UE
// solver (package ue) through package linkperf.
type Link struct {
	Index LinkIndex
	ID    string

	TailNode NodeIndex
	HeadNode NodeIndex

	Length    float64 // miles or km, unit fixed per run
	FreeSpeed float64 // same distance unit per hour
	Lanes     int
	Capacity  float64 // vehicles/hour

	AlphaBPR float64
	BetaBPR  float64

	// Toll is an optional per-period fixed toll added to generalized cost;
	// nil means no toll on this link in any period.
	Toll []float64

	allowedNames []string  // raw allowed_uses tokens, pending resolution
	AllowedMask  AgentMask // resolved by Network.ResolveAgentMasks

	IsConnector bool

	// FFTT is the free-flow travel time in minutes, derived once from
	// Length and FreeSpeed and constant across periods.
	FFTT float64

	// Vol, TT, GC are period-indexed (len == Network.NumPeriods once
	// AllocatePeriods has run). TT is seeded to FFTT, GC to FFTT (no toll).
	Vol []float64
	TT  []float64
	GC  []float64
}

// Zone is an OD endpoint: a set of member nodes plus (after connector
// synthesis) a virtual origin/destination anchor node and the connector
// links attaching it to the network.
type Zone struct {
	ID    string
	Index ZoneIndex

	MemberNodes []NodeIndex

	// OriginAnchor/DestAnchor are virtual node indices created during
	// connector synthesis: every TDSP search starts at OriginAnchor and
	// paths are reconstructed back to DestAnchor.
	OriginAnchor NodeIndex
	DestAnchor   NodeIndex

	// ConnectorOut/ConnectorIn are the synthesized connector link indices
	// from OriginAnchor to member nodes, and from member nodes to
	// DestAnchor, respectively.
	ConnectorOut []LinkIndex
	ConnectorIn  []LinkIndex
}
