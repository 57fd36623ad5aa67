package orchestrator

import (
	"fmt"

	"opendta/linkqueue"
	"opendta/simulation"
)

// RunSimulation builds the mesoscopic simulation engine from settings'
// simulation.resolution_in_second / duration_in_minute /
// traffic_flow_model, expands the converged column pool into agents, and
// runs the interval-stepped loop. Recording is enabled whenever
// link_performance_dta output is requested, since that is the only
// consumer of per-interval samples.
func (h *Handle) RunSimulation() error {
	flowModel, err := linkqueue.ParseFlowModel(h.Settings.Simulation.TrafficFlowModel)
	if err != nil {
		return fmt.Errorf("simulation.traffic_flow_model: %w", err)
	}

	simuStart := 1440.0
	for _, p := range h.Periods {
		if float64(p.StartMinute) < simuStart {
			simuStart = float64(p.StartMinute)
		}
	}
	if len(h.Periods) == 0 {
		simuStart = 0
	}

	cfg := simulation.Config{
		IntervalSeconds: h.Settings.Simulation.ResolutionInSecond,
		DurationMinutes: h.Settings.Simulation.DurationInMinute,
		SimuStartMinute: simuStart,
		FlowModel:       flowModel,
	}

	eng := simulation.NewEngine(h.Net, cfg)
	if err := eng.SetupAgents(h.Pool, h.AgentTypes, h.Periods); err != nil {
		return err
	}
	if h.Settings.Output.Enable && h.Settings.Output.SaveLinkPerformanceDTA {
		eng.EnableRecording()
	}
	eng.Run()

	h.Engine = eng
	return nil
}
