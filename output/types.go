package output

// LinkPerformanceUERow is one row of link_performance_ue.csv: per
// (link, period) volume, travel time, volume/capacity ratio, and speed.
type LinkPerformanceUERow struct {
	LinkID      string
	PeriodLabel string
	Volume      float64
	TravelTime  float64
	VOC         float64
	Speed       float64
}

// LinkPerformanceDTARow is one row of link_performance_dta.csv: one
// per (link, time slice) with aggregated simulated volume, density, and
// speed.
type LinkPerformanceDTARow struct {
	LinkID     string
	SliceLabel string
	SliceIndex int
	Volume     float64
	Density    float64
	Speed      float64
}

// TrajectoryRow is one row of trajectories.csv: an agent's OD,
// departure timestamp, node-id path, and per-link arrival timestamps.
type TrajectoryRow struct {
	AgentIndex      int
	OriginZoneID    string
	DestZoneID      string
	DepartTimestamp string
	NodeIDs         []string
	ArrivalTimestamps []string
}
