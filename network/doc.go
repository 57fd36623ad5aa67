// Package network holds the physical road network: nodes, directed links,
// zones, and the virtual connectors that anchor shortest-path search at
// each zone.
//
// The network is built once (via NewFromRecords) and is immutable
// thereafter: node, link, and zone slices are never resized or reordered
// after Finalize returns successfully, so every index handed out (NodeIndex,
// LinkIndex, ZoneIndex) remains valid and stable for the life of the run.
// Concurrent readers (the UE solver's worker pool, see package ue) rely on
// this immutability to avoid locking.
//
// Errors:
//
//	ErrDuplicateNodeID   - two nodes share an identifier.
//	ErrDuplicateLinkID   - two links share an identifier.
//	ErrDanglingLink      - a link references an unknown node.
//	ErrUnknownZone       - a node references an unknown zone.
//	ErrNoAnchor          - a zone has no reachable anchor after connector synthesis.
package network
