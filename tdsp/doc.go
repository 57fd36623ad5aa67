// Package tdsp implements the time-dependent shortest path search: for a
// given (demand period, agent type, origin zone), compute
// least-generalized-cost paths from the zone's virtual origin anchor to
// every other zone's virtual destination anchor, over the subgraph of
// links whose allowed-agent-type mask includes the agent type.
//
// Algorithm: label-correcting with a deque, using the SLF (Smallest-Label-
// First) heuristic — a relaxed node is pushed to the front of the deque if
// its new distance undercuts the current front's distance, and to the back
// otherwise. This is the classical D'Esopo-Pape variant: unlike Dijkstra's
// binary heap it needs no total order over pending labels, which matters
// here because generalized cost can, in principle, be revised more than
// once per node during a single search pass when multiple connectors
// converge on the same real node.
//
// Ties between equal-cost edges are broken by ascending link index:
// relaxation only replaces a label on strict improvement, and outgoing
// link lists are visited in ascending LinkIndex order (the order in which
// package network appends them), so the first of several equal-cost edges
// is always the one that wins.
//
// Errors:
//
//	ErrUnknownOriginZone - the requested origin zone index is outside the zone table.
//	ErrAgentTypeOutOfRange - agentType is outside the supported [0,32) mask width.
package tdsp
