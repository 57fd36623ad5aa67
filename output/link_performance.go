package output

import (
	"fmt"

	"opendta/model"
	"opendta/network"
	"opendta/simulation"
)

// ComputeLinkPerformanceUE emits one row per (non-connector link,
// period): volume, travel time, V/C ratio, and speed. V/C uses the same
// capacity*duration_hours denominator as the BPR function (package
// linkperf) so the two stay consistent.
func ComputeLinkPerformanceUE(net *network.Network, periods []model.DemandPeriod) []LinkPerformanceUERow {
	var rows []LinkPerformanceUERow
	for i := range net.Links {
		l := &net.Links[i]
		if l.IsConnector {
			continue
		}
		for p, period := range periods {
			if p >= len(l.Vol) {
				continue
			}
			vol := l.Vol[p]
			tt := l.TT[p]
			durHours := period.DurationHours()

			var voc float64
			if l.Capacity > 0 && durHours > 0 {
				voc = vol / (l.Capacity * durHours)
			}
			var speed float64
			if tt > 0 {
				speed = l.Length * 60.0 / tt
			}

			rows = append(rows, LinkPerformanceUERow{
				LinkID:      l.ID,
				PeriodLabel: period.Label,
				Volume:      vol,
				TravelTime:  tt,
				VOC:         voc,
				Speed:       speed,
			})
		}
	}
	return rows
}

// ComputeLinkPerformanceDTA aggregates a simulation.Recording into
// fixed-width time slices (default 15 min): per-slice volume
// (throughput, veh/h), density (veh/mile/lane), and speed
// derived from the flow/density relation q = k*v, falling back to the
// link's free-flow speed while the slice carries no traffic.
func ComputeLinkPerformanceDTA(net *network.Network, rec *simulation.Recording, intervalSeconds, sliceMinutes float64) []LinkPerformanceDTARow {
	if rec == nil || sliceMinutes <= 0 {
		return nil
	}
	numLinks := len(net.Links)
	numSlices := 0
	for tau := range rec.Samples {
		s := sliceIndex(tau, intervalSeconds, sliceMinutes)
		if s+1 > numSlices {
			numSlices = s + 1
		}
	}

	outflowSum := make([][]int, numLinks)
	onLinkSum := make([][]float64, numLinks)
	onLinkCount := make([][]int, numLinks)
	for i := 0; i < numLinks; i++ {
		outflowSum[i] = make([]int, numSlices)
		onLinkSum[i] = make([]float64, numSlices)
		onLinkCount[i] = make([]int, numSlices)
	}

	for tau, sample := range rec.Samples {
		s := sliceIndex(tau, intervalSeconds, sliceMinutes)
		for li := 0; li < numLinks; li++ {
			outflowSum[li][s] += sample.Outflow[li]
			onLinkSum[li][s] += float64(sample.OnLink[li])
			onLinkCount[li][s]++
		}
	}

	sliceHours := sliceMinutes / 60.0

	var rows []LinkPerformanceDTARow
	for li := 0; li < numLinks; li++ {
		l := &net.Links[li]
		if l.IsConnector {
			continue
		}
		laneMiles := l.Length * float64(maxInt(l.Lanes, 1))
		freeSpeed := l.FreeSpeed

		for s := 0; s < numSlices; s++ {
			if onLinkCount[li][s] == 0 {
				continue
			}
			volumeVPH := float64(outflowSum[li][s]) / sliceHours
			avgOnLink := onLinkSum[li][s] / float64(onLinkCount[li][s])

			var density float64
			if laneMiles > 0 {
				density = avgOnLink / laneMiles
			}

			speed := freeSpeed
			if density > 0 {
				speed = volumeVPH / density
			}

			rows = append(rows, LinkPerformanceDTARow{
				LinkID:     l.ID,
				SliceLabel: fmt.Sprintf("slice_%d", s),
				SliceIndex: s,
				Volume:     volumeVPH,
				Density:    density,
				Speed:      speed,
			})
		}
	}
	return rows
}

func sliceIndex(tau int, intervalSeconds, sliceMinutes float64) int {
	minuteOfRun := float64(tau) * intervalSeconds / 60.0
	return int(minuteOfRun / sliceMinutes)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
