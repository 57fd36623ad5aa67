package output

import (
	"fmt"

	"opendta/network"
	"opendta/simulation"
)

// FormatTimestamp renders a simulation interval as HH:MM:SS.sss:
// interval -> simu_start_minute*60 + tau*interval_seconds.
func FormatTimestamp(simuStartMinute, intervalSeconds float64, tau int) string {
	return formatSeconds(simuStartMinute*60 + float64(tau)*intervalSeconds)
}

// FormatMinuteTimestamp renders a fractional minute-of-day directly,
// used for an agent's departure time which is not interval-quantized.
func FormatMinuteTimestamp(minuteOfDay float64) string {
	return formatSeconds(minuteOfDay * 60)
}

func formatSeconds(totalSeconds float64) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	h := int(totalSeconds) / 3600
	m := (int(totalSeconds) % 3600) / 60
	s := totalSeconds - float64(h*3600+m*60)
	return fmt.Sprintf("%02d:%02d:%06.3f", h, m, s)
}

// ComputeTrajectories emits one row per agent: OD zone ids, departure
// timestamp, the node-id sequence of its assigned column, and a
// per-link arrival timestamp for every link it has reached so far. An
// agent that never reached link i (simulation ended first) gets an
// empty timestamp at that position.
func ComputeTrajectories(net *network.Network, eng *simulation.Engine) []TrajectoryRow {
	rows := make([]TrajectoryRow, 0, len(eng.Agents))
	for _, a := range eng.Agents {
		nodeIDs := make([]string, len(a.Nodes))
		for i, n := range a.Nodes {
			nodeIDs[i] = net.Nodes[n].ID
		}

		arrivals := make([]string, len(a.ArrivalInterval))
		for i, interval := range a.ArrivalInterval {
			if interval < 0 {
				continue
			}
			arrivals[i] = FormatTimestamp(eng.SimuStartMinute, eng.IntervalSeconds, interval)
		}

		rows = append(rows, TrajectoryRow{
			AgentIndex:        a.Index,
			OriginZoneID:      net.Zones[a.Origin].ID,
			DestZoneID:        net.Zones[a.Destination].ID,
			DepartTimestamp:   FormatMinuteTimestamp(a.DepartMinute),
			NodeIDs:           nodeIDs,
			ArrivalTimestamps: arrivals,
		})
	}
	return rows
}
