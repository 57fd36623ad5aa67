package iocsv

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"opendta/output"
)

// WriteLinkPerformanceUE emits link_performance_ue.csv: one row per
// (link, period) with volume, travel time, V/C ratio, and speed.
func WriteLinkPerformanceUE(w io.Writer, rows []output.LinkPerformanceUERow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"link_id", "period", "volume", "travel_time", "VOC", "speed"}); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.LinkID,
			r.PeriodLabel,
			strconv.FormatFloat(r.Volume, 'f', 3, 64),
			strconv.FormatFloat(r.TravelTime, 'f', 3, 64),
			strconv.FormatFloat(r.VOC, 'f', 4, 64),
			strconv.FormatFloat(r.Speed, 'f', 3, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteLinkPerformanceDTA emits link_performance_dta.csv: one row per
// (link, time slice) with aggregated simulated volume, density, and speed.
func WriteLinkPerformanceDTA(w io.Writer, rows []output.LinkPerformanceDTARow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"link_id", "slice", "volume", "density", "speed"}); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.LinkID,
			r.SliceLabel,
			strconv.FormatFloat(r.Volume, 'f', 3, 64),
			strconv.FormatFloat(r.Density, 'f', 3, 64),
			strconv.FormatFloat(r.Speed, 'f', 3, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTrajectories emits trajectories.csv: one row per agent with id, OD,
// departure timestamp, node path, and per-link arrival timestamps. Node
// path and arrival timestamps are semicolon-joined to keep the file
// comma-delimited.
func WriteTrajectories(w io.Writer, rows []output.TrajectoryRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"agent_id", "o_zone_id", "d_zone_id", "depart_time", "node_path", "arrival_times"}); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.AgentIndex),
			r.OriginZoneID,
			r.DestZoneID,
			r.DepartTimestamp,
			strings.Join(r.NodeIDs, ";"),
			strings.Join(r.ArrivalTimestamps, ";"),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
