package model

import "opendta/network"

// AgentType is a traveler class: name, value of time, passenger-car
// equivalent, and flow-type flag.
type AgentType struct {
	Name  string
	Index int

	// VOT is the value of time in currency per hour, used to convert a
	// toll into generalized-cost minutes.
	VOT float64

	// PCE is the passenger-car-equivalent factor used when reconstructing
	// link volumes from column flows.
	PCE float64

	// FlowType marks an agent type as participating in the mesoscopic
	// simulation (vs. UE-only); settings.AgentTypeRecord.FlowType feeds
	// this directly.
	FlowType bool
}

// DemandPeriod is a named time-of-day window: label, start/end minute of
// day. 0 <= Start < End <= 1440.
type DemandPeriod struct {
	Label string
	Index int

	StartMinute int
	EndMinute   int
}

// DurationMinutes returns End - Start.
func (d DemandPeriod) DurationMinutes() int {
	return d.EndMinute - d.StartMinute
}

// DurationHours returns the period duration in hours, the denominator used
// by the BPR volume-delay function (package linkperf).
func (d DemandPeriod) DurationHours() float64 {
	return float64(d.DurationMinutes()) / 60.0
}

// Contains reports whether departure minute m (minute of day, 0..1440)
// falls in this period. A departure exactly at the period boundary
// belongs to the later period: the interval is half-open [Start, End).
func (d DemandPeriod) Contains(m float64) bool {
	return m >= float64(d.StartMinute) && m < float64(d.EndMinute)
}

// ODKey identifies one demand cell: an (origin zone, destination zone,
// demand period, agent type) tuple. The column pool (package column) is
// keyed by ODKey.
type ODKey struct {
	Origin      network.ZoneIndex
	Destination network.ZoneIndex
	Period      int
	AgentType   int
}

// Less provides the ascending lexicographic ordering required for
// stable per-OD gradient-projection updates across runs.
func (k ODKey) Less(o ODKey) bool {
	if k.Origin != o.Origin {
		return k.Origin < o.Origin
	}
	if k.Destination != o.Destination {
		return k.Destination < o.Destination
	}
	if k.Period != o.Period {
		return k.Period < o.Period
	}
	return k.AgentType < o.AgentType
}
