package ue

import (
	"opendta/column"
	"opendta/model"
	"opendta/network"
)

// Config holds the UE solver's tunable knobs (settings'
// assignment.column_generation_num / column_update_num / thread_nums).
type Config struct {
	// ColumnGenNum is K, the number of column-generation outer iterations.
	ColumnGenNum int

	// ColumnOptNum is the number of additional column-optimization-only
	// iterations (gradient projection, no new columns).
	ColumnOptNum int

	// ThreadNums sizes the parallel worker pool over origin zones during
	// TDSP; 0 or 1 means fully serial.
	ThreadNums int

	// Epsilon floors the gradient-projection scale denominator so a
	// near-zero minimum cost cannot blow up the step size.
	Epsilon float64

	// OnIterationDone, when set, receives each completed outer
	// iteration's wall-clock duration in seconds. Instrumentation only;
	// the solver never reads it back.
	OnIterationDone func(seconds float64)
}

// DefaultConfig returns the conventional 20/20 iteration split with a
// serial worker pool.
func DefaultConfig() Config {
	return Config{
		ColumnGenNum: 20,
		ColumnOptNum: 20,
		ThreadNums:   1,
		Epsilon:      1e-6,
	}
}

// Solver drives the UE loop over a fixed physical network, agent-type and
// demand-period tables, and OD demand matrix.
type Solver struct {
	Net          *network.Network
	Pool         *column.Pool
	AgentTypes   []model.AgentType
	Periods      []model.DemandPeriod
	Demand       map[model.ODKey]float64

	Cfg Config

	// RepresentativeVOT is used for the generalized-cost toll term when a
	// link carries a toll. GC is stored once per (link, period), not per
	// agent type, so tolls use a single representative value-of-time
	// rather than varying by agent type.
	RepresentativeVOT float64

	iterTotal int // running outer-iteration counter, for the step size
}

// NewSolver constructs a Solver and allocates a pool sized to the
// network's zone count.
func NewSolver(net *network.Network, agentTypes []model.AgentType, periods []model.DemandPeriod, demand map[model.ODKey]float64, cfg Config) *Solver {
	vot := 0.0
	if len(agentTypes) > 0 {
		vot = agentTypes[0].VOT
	}
	return &Solver{
		Net:               net,
		Pool:              column.NewPool(len(net.Zones)),
		AgentTypes:        agentTypes,
		Periods:           periods,
		Demand:            demand,
		Cfg:               cfg,
		RepresentativeVOT: vot,
	}
}
