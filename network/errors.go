package network

import "errors"

// Sentinel errors for network construction and connector synthesis.
var (
	// ErrDuplicateNodeID indicates two nodes share the same identifier.
	ErrDuplicateNodeID = errors.New("network: duplicate node id")

	// ErrDuplicateLinkID indicates two links share the same identifier.
	ErrDuplicateLinkID = errors.New("network: duplicate link id")

	// ErrDuplicateZoneID indicates two zones share the same identifier.
	ErrDuplicateZoneID = errors.New("network: duplicate zone id")

	// ErrDanglingLink indicates a link references a node id that does not exist.
	ErrDanglingLink = errors.New("network: link references unknown node")

	// ErrUnknownZone indicates a node references a zone id that was never declared.
	ErrUnknownZone = errors.New("network: node references unknown zone")

	// ErrNoAnchor indicates connector synthesis could not attach a zone to
	// any node, leaving it unreachable for shortest-path search.
	ErrNoAnchor = errors.New("network: zone has no reachable anchor")

	// ErrUnknownAgentType indicates allowed_uses names an agent type that
	// was never registered with ResolveAgentMasks.
	ErrUnknownAgentType = errors.New("network: link allows unknown agent type")

	// ErrPeriodsNotAllocated indicates per-period link state was read before
	// AllocatePeriods was called.
	ErrPeriodsNotAllocated = errors.New("network: per-period state not allocated")
)
