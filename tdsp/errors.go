package tdsp

import "errors"

// ErrUnknownOriginZone indicates Search was asked to route from a zone
// index outside the network's zone table.
var ErrUnknownOriginZone = errors.New("tdsp: unknown origin zone")

// ErrAgentTypeOutOfRange indicates an agent-type index outside the
// [0, 32) range package network's AgentMask can represent.
var ErrAgentTypeOutOfRange = errors.New("tdsp: agent type index out of range")
