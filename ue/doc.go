// Package ue orchestrates the column-generation / gradient-projection user
// equilibrium solver: it drives the tdsp <-> column <-> linkperf loop
// across a fixed number of outer iterations and performs the parallel
// worker-pool fan-out over origin zones during the TDSP step of each
// column-generation iteration.
//
// Concurrency: the worker pool reads an immutable snapshot of link
// generalized cost (linkperf.UpdateLinkTravelTime already ran for this
// iteration before any worker starts) and each worker owns a disjoint set
// of origin-zone shards of the column pool, so no lock guards the pool
// during the parallel phase. A single-threaded barrier runs after every
// worker finishes to redistribute OD volume and rebuild link volumes.
package ue
