// Package simulation implements the mesoscopic agent dispatcher: it
// expands final column-pool volumes into individual agents, buckets
// them by departure interval, and steps a discrete-interval
// depart/advance loop that drives each link's linkqueue.LinkQueue.
//
// The engine is single-threaded and deterministic: departure intervals
// are assigned by a fixed fractional split of each column's volume, and
// within an interval agents are processed in ascending agent-index
// order, so two runs over identical inputs produce identical
// trajectories.
package simulation
