package ue

import "opendta/network"

// demandEntry is one positive-demand OD cell grouped by origin zone for
// the parallel TDSP fan-out.
type demandEntry struct {
	Destination network.ZoneIndex
	Period      int
	AgentType   int
	Q           float64
}

// byOrigin groups s.Demand's positive entries by origin zone, and further
// by (period, agentType) so each worker runs exactly one TDSP search per
// distinct (period, agentType) pair it owns: one TDSP per (period,
// agent-type) per origin.
type originWork struct {
	// searches is the distinct set of (period, agentType) pairs this
	// origin needs searched.
	searches []searchKey
	// entries maps a searchKey to its positive-demand destinations.
	entries map[searchKey][]demandEntry
}

type searchKey struct {
	Period    int
	AgentType int
}

func (s *Solver) byOrigin() map[network.ZoneIndex]*originWork {
	out := make(map[network.ZoneIndex]*originWork)
	for key, q := range s.Demand {
		if q <= 0 {
			continue
		}
		w, ok := out[key.Origin]
		if !ok {
			w = &originWork{entries: make(map[searchKey][]demandEntry)}
			out[key.Origin] = w
		}
		sk := searchKey{Period: key.Period, AgentType: key.AgentType}
		if _, seen := w.entries[sk]; !seen {
			w.searches = append(w.searches, sk)
		}
		w.entries[sk] = append(w.entries[sk], demandEntry{
			Destination: key.Destination,
			Period:      key.Period,
			AgentType:   key.AgentType,
			Q:           q,
		})
	}
	return out
}
