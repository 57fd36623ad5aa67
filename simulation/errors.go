package simulation

import "errors"

// ErrNoAssignedPath indicates an agent was generated from a column with
// an empty link path (origin zone == destination zone with no
// connector hop), which the engine cannot schedule.
var ErrNoAssignedPath = errors.New("simulation: agent has no assigned link path")
