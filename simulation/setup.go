package simulation

import (
	"fmt"
	"sort"

	"opendta/column"
	"opendta/linkqueue"
	"opendta/model"
	"opendta/network"
)

// Config bundles the settings-derived simulation knobs:
// simulation.resolution_in_second, simulation.duration_in_minute,
// simulation.traffic_flow_model.
type Config struct {
	IntervalSeconds float64
	DurationMinutes float64
	SimuStartMinute float64
	FlowModel       linkqueue.FlowModel

	// CapacityProfiles optionally supplies a per-link time-of-day
	// outflow-capacity profile keyed by network.LinkIndex; nil entries
	// default to flat 1.0.
	CapacityProfiles map[network.LinkIndex][]float64
}

// NewEngine builds one LinkQueue per network link and sizes the
// interval loop from cfg.
func NewEngine(net *network.Network, cfg Config) *Engine {
	queues := make([]*linkqueue.LinkQueue, len(net.Links))
	for i := range net.Links {
		l := &net.Links[i]
		storage := linkqueue.DefaultJamDensityPerLaneMile * l.Length * float64(maxInt(l.Lanes, 1))
		if l.IsConnector {
			storage = 0 // unconstrained: connectors are zero-length virtual links
		}
		var profile []float64
		if cfg.CapacityProfiles != nil {
			profile = cfg.CapacityProfiles[l.Index]
		}
		queues[i] = linkqueue.New(l.ID, l.Capacity, l.FFTT, cfg.IntervalSeconds, storage, linkqueue.DefaultBackwardWaveSpeedMPH, profile)
	}

	totalIntervals := int(cfg.DurationMinutes * 60 / cfg.IntervalSeconds)

	return &Engine{
		Net:             net,
		Queues:          queues,
		tdAgents:        make(map[int][]int),
		IntervalSeconds: cfg.IntervalSeconds,
		TotalIntervals:  totalIntervals,
		SimuStartMinute: cfg.SimuStartMinute,
		FlowModel:       cfg.FlowModel,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// SetupAgents expands every column belonging to a flow-participating
// agent type (model.AgentType.FlowType) into individual Agent records
// and buckets them by departure interval. Column volumes are fractional;
// one running remainder is carried forward across every column of the
// pool (in pool-key, then column-index order) so the total agent count tracks
// the total volume without systematic rounding bias, and the expansion
// is fully deterministic given identical pool contents. A column with an
// empty link path (origin zone == destination zone with no connector
// hop) cannot be scheduled and is reported as ErrNoAssignedPath rather
// than silently producing an agent the engine can never advance.
func (e *Engine) SetupAgents(pool *column.Pool, agentTypes []model.AgentType, periods []model.DemandPeriod) error {
	flowParticipates := make(map[int]bool, len(agentTypes))
	for _, at := range agentTypes {
		flowParticipates[at.Index] = at.FlowType
	}

	var carry float64
	nextIndex := 0

	for _, key := range pool.Keys() {
		if !flowParticipates[key.AgentType] {
			continue
		}
		cv, ok := pool.Get(key)
		if !ok {
			continue
		}
		var period model.DemandPeriod
		if key.Period >= 0 && key.Period < len(periods) {
			period = periods[key.Period]
		}

		for _, c := range cv.Columns {
			if c.Volume <= 0 {
				continue
			}
			carry += c.Volume
			n := int(carry)
			carry -= float64(n)
			if n <= 0 {
				continue
			}

			if len(c.Links) == 0 {
				return fmt.Errorf("%w: origin zone %d destination zone %d", ErrNoAssignedPath, key.Origin, key.Destination)
			}

			nodes := append([]network.NodeIndex(nil), c.Nodes...)
			links := append([]network.LinkIndex(nil), c.Links...)

			for i := 0; i < n; i++ {
				frac := (float64(i) + 0.5) / float64(n)
				depart := float64(period.StartMinute) + frac*float64(period.DurationMinutes())

				arr := make([]int, len(links))
				for j := range arr {
					arr[j] = -1
				}

				a := &Agent{
					Index:           nextIndex,
					Origin:          key.Origin,
					Destination:     key.Destination,
					Period:          key.Period,
					AgentType:       key.AgentType,
					DepartMinute:    depart,
					Nodes:           nodes,
					Links:           links,
					ArrivalInterval: arr,
				}
				e.Agents = append(e.Agents, a)

				interval := e.intervalOf(depart)
				e.tdAgents[interval] = append(e.tdAgents[interval], a.Index)
				nextIndex++
			}
		}
	}

	for tau := range e.tdAgents {
		sort.Ints(e.tdAgents[tau])
	}
	return nil
}

func (e *Engine) intervalOf(minuteOfDay float64) int {
	seconds := (minuteOfDay - e.SimuStartMinute) * 60
	if seconds < 0 {
		seconds = 0
	}
	return int(seconds / e.IntervalSeconds)
}
