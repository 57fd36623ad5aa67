// Package column implements the column pool: per-OD-Key collections of
// alternative paths ("columns") with flow volumes, travel times, and
// gradients.
//
// The pool is sharded by origin zone: each shard is an independent map
// keyed by the full model.ODKey, holding only the OD pairs whose origin
// is that shard's zone. This lets the UE solver's parallel worker pool
// (package ue) hand each origin zone to exactly one worker with no
// locking, since workers never touch one another's shard.
//
// Column identity is path equality on the node sequence: AddOrMerge
// never creates two columns with the same Nodes slice for one OD Key; it
// merges by leaving the existing column's volume untouched during
// column generation (only gradient projection changes existing volumes)
// and reports whether a new column was added.
package column
