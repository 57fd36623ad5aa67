package orchestrator

import (
	"os"
	"path/filepath"

	"opendta/iocsv"
	"opendta/metrics"
	"opendta/output"
)

// OutputColumns writes columns.csv to dir (settings output.save_ue_path_flow).
func (h *Handle) OutputColumns(dir string) error {
	f, err := os.Create(filepath.Join(dir, "columns.csv"))
	if err != nil {
		return err
	}
	defer f.Close()
	return iocsv.WriteColumns(f, h.Net, h.Periods, h.AgentTypes, h.Pool)
}

// OutputLinkPerformanceUE writes link_performance_ue.csv to dir
// (settings output.save_link_performance_ue).
func (h *Handle) OutputLinkPerformanceUE(dir string) error {
	rows := output.ComputeLinkPerformanceUE(h.Net, h.Periods)
	f, err := os.Create(filepath.Join(dir, "link_performance_ue.csv"))
	if err != nil {
		return err
	}
	defer f.Close()
	return iocsv.WriteLinkPerformanceUE(f, rows)
}

// OutputLinkPerformanceDTA writes link_performance_dta.csv to dir using
// the simulation's recorded per-interval samples, aggregated into
// sliceMinutes-wide slices (default 15). Settings output
// .save_link_performance_dta.
func (h *Handle) OutputLinkPerformanceDTA(dir string, sliceMinutes float64) error {
	if sliceMinutes <= 0 {
		sliceMinutes = 15
	}
	rows := output.ComputeLinkPerformanceDTA(h.Net, h.Engine.Recording, h.Engine.IntervalSeconds, sliceMinutes)
	f, err := os.Create(filepath.Join(dir, "link_performance_dta.csv"))
	if err != nil {
		return err
	}
	defer f.Close()
	return iocsv.WriteLinkPerformanceDTA(f, rows)
}

// OutputTrajectories writes trajectories.csv to dir (settings
// output.save_trajectory).
func (h *Handle) OutputTrajectories(dir string) error {
	rows := output.ComputeTrajectories(h.Net, h.Engine)
	f, err := os.Create(filepath.Join(dir, "trajectories.csv"))
	if err != nil {
		return err
	}
	defer f.Close()
	return iocsv.WriteTrajectories(f, rows)
}

// OutputMetrics writes metrics.prom to dir: every counter/gauge package
// metrics registered for this run, in Prometheus text exposition format.
// Written whenever any other output is enabled, since it reports on the
// same run those outputs describe.
func (h *Handle) OutputMetrics(dir string) error {
	f, err := os.Create(filepath.Join(dir, "metrics.prom"))
	if err != nil {
		return err
	}
	defer f.Close()
	return metrics.Dump(f)
}
