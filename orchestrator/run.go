package orchestrator

import (
	"log"
	"time"

	"opendta/metrics"
)

// RunAll drives the full load -> UE -> simulation -> output pipeline for
// one input/output directory pair: columns are either loaded or
// generated from demand (never both), simulation only runs when enabled,
// and each output file is gated by its own settings flag.
func RunAll(inputDir, outputDir string) error {
	h := New()

	start := time.Now()
	if err := h.ReadSettings(inputDir); err != nil {
		return err
	}
	if err := h.ReadNetwork(inputDir); err != nil {
		return err
	}
	if h.UsesExistingColumns() {
		if err := h.FinalizeNetwork(); err != nil {
			return err
		}
		if err := h.LoadColumns(inputDir); err != nil {
			return err
		}
	} else {
		if err := h.ReadDemands(inputDir); err != nil {
			return err
		}
		if err := h.FinalizeNetwork(); err != nil {
			return err
		}
	}
	log.Printf("opendta loads input in %s", time.Since(start))

	start = time.Now()
	if err := h.FindUE(); err != nil {
		return err
	}
	metrics.UEIterations.Add(float64(h.Settings.Assignment.ColumnGenerationNum + h.Settings.Assignment.ColumnUpdateNum))
	metrics.ColumnPoolSize.Set(float64(countColumns(h)))
	log.Printf("opendta finds UE in %s", time.Since(start))

	if h.EnablesSimulation() {
		start = time.Now()
		if err := h.RunSimulation(); err != nil {
			return err
		}
		metrics.SimulationIntervals.Add(float64(h.Engine.TotalIntervals))
		metrics.AgentsCompleted.Add(float64(countCompletedAgents(h)))
		log.Printf("opendta completes DTA in %s", time.Since(start))
	}

	if h.EnablesOutput() {
		start = time.Now()
		if err := writeOutputs(h, outputDir); err != nil {
			return err
		}
		log.Printf("opendta outputs results in %s", time.Since(start))
	}

	return nil
}

func writeOutputs(h *Handle, outputDir string) error {
	if h.Settings.Output.SaveLinkPerformanceUE {
		if err := h.OutputLinkPerformanceUE(outputDir); err != nil {
			return err
		}
	}
	if h.Settings.Output.SaveUEPathFlow {
		if err := h.OutputColumns(outputDir); err != nil {
			return err
		}
	}
	if h.EnablesSimulation() {
		if h.Settings.Output.SaveLinkPerformanceDTA {
			if err := h.OutputLinkPerformanceDTA(outputDir, 15); err != nil {
				return err
			}
		}
		if h.Settings.Output.SaveTrajectory {
			if err := h.OutputTrajectories(outputDir); err != nil {
				return err
			}
		}
	}
	if err := h.OutputMetrics(outputDir); err != nil {
		return err
	}
	return nil
}

func countColumns(h *Handle) int {
	n := 0
	for _, key := range h.Pool.Keys() {
		cv, _ := h.Pool.Get(key)
		n += len(cv.Columns)
	}
	return n
}

func countCompletedAgents(h *Handle) int {
	n := 0
	for _, a := range h.Engine.Agents {
		if a.Done() {
			n++
		}
	}
	return n
}
