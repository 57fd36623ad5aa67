package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is a private collector registry so repeated runs within the
// same process (tests, a long-lived caller) never hit Prometheus's
// global-registry double-registration panic.
var Registry = prometheus.NewRegistry()

var (
	// UEIterations counts completed outer column-generation/optimization
	// iterations.
	UEIterations = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "opendta_ue_iterations_total",
		Help: "Total UE solver outer iterations completed.",
	})

	// ColumnPoolSize reports the current total column count across every
	// OD key, sampled at the end of each outer iteration.
	ColumnPoolSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "opendta_column_pool_size",
		Help: "Number of columns currently held across all OD keys.",
	})

	// ColumnGenDuration observes wall-clock seconds spent per outer
	// iteration's TDSP + redistribution phases.
	ColumnGenDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "opendta_ue_iteration_duration_seconds",
		Help:    "Wall-clock duration of one UE outer iteration.",
		Buckets: prometheus.DefBuckets,
	})

	// SimulationIntervals counts completed simulation clock ticks.
	SimulationIntervals = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "opendta_simulation_intervals_total",
		Help: "Total simulation intervals advanced.",
	})

	// AgentsCompleted counts agents that have reached their destination.
	AgentsCompleted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "opendta_agents_completed_total",
		Help: "Total agents that completed their trip during simulation.",
	})
)

func init() {
	Registry.MustRegister(UEIterations, ColumnPoolSize, ColumnGenDuration, SimulationIntervals, AgentsCompleted)
}
