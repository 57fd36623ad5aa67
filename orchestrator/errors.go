package orchestrator

import "errors"

// ErrUnknownReference is returned when a settings.yml demand_files entry
// names a period or agent type that the demand-period/agent-type tables
// never registered — the Go replacement for
// get_agent_type/get_demand_period's throwing lookup, returned as an
// error instead of thrown. Zone ids a demand file references are
// registered as zones, not rejected.
var ErrUnknownReference = errors.New("orchestrator: unknown reference")
