package ue

import (
	"context"
	"fmt"
	"math"
	"time"

	"opendta/linkperf"
)

// Run executes ColumnGenNum column-generation iterations followed by
// ColumnOptNum column-optimization-only iterations. Convergence is not
// tolerance-gated; the loop runs the configured total iteration count
// and then returns.
func (s *Solver) Run(ctx context.Context) error {
	for k := 0; k < s.Cfg.ColumnGenNum; k++ {
		iterStart := time.Now()
		if err := s.updateTravelTimes(); err != nil {
			return err
		}
		s.Pool.ResetNewColumnMarkers()
		if err := s.columnGenerationPhase(ctx); err != nil {
			return err
		}
		if err := s.computeColumnCosts(); err != nil {
			return err
		}
		if err := s.redistribute(k, true); err != nil {
			return err
		}
		s.rebuildLinkVolumes()
		s.iterTotal++
		if s.Cfg.OnIterationDone != nil {
			s.Cfg.OnIterationDone(time.Since(iterStart).Seconds())
		}
	}

	// The optimization-only phase never discovers new columns, so every
	// iteration here takes the gradient-projection branch unconditionally
	// — resetting the markers keeps any leftover NewColumnAdded/PendingNew
	// state from the final generation iteration from leaking in.
	s.Pool.ResetNewColumnMarkers()
	for i := 0; i < s.Cfg.ColumnOptNum; i++ {
		iterStart := time.Now()
		if err := s.updateTravelTimes(); err != nil {
			return err
		}
		if err := s.computeColumnCosts(); err != nil {
			return err
		}
		if err := s.redistribute(s.Cfg.ColumnGenNum, false); err != nil {
			return err
		}
		s.rebuildLinkVolumes()
		s.iterTotal++
		if s.Cfg.OnIterationDone != nil {
			s.Cfg.OnIterationDone(time.Since(iterStart).Seconds())
		}
	}

	return nil
}

func (s *Solver) periodDurationsHours() []float64 {
	out := make([]float64, len(s.Periods))
	for i, p := range s.Periods {
		out[i] = p.DurationHours()
	}
	return out
}

func (s *Solver) updateTravelTimes() error {
	return linkperf.UpdateLinkTravelTime(s.Net, linkperf.Options{
		PeriodDurationHours: s.periodDurationsHours(),
		VOT:                 s.RepresentativeVOT,
	})
}

// computeColumnCosts sums per-link travel time along each column's link
// path into Column.TravelTime and mirrors it into Gradient (gradient
// g_c = tt_c).
func (s *Solver) computeColumnCosts() error {
	for _, key := range s.Pool.Keys() {
		cv, _ := s.Pool.Get(key)
		for _, c := range cv.Columns {
			var tt float64
			for _, li := range c.Links {
				tt += s.Net.Links[li].TT[key.Period]
			}
			if math.IsNaN(tt) {
				return fmt.Errorf("%w: column travel time is NaN", ErrNumericFault)
			}
			c.TravelTime = tt
			c.Gradient = tt
		}
	}
	return nil
}

// rebuildLinkVolumes sums every column's volume onto its constituent
// links, weighted by the owning agent type's PCE factor, after zeroing
// every link's per-period volume.
func (s *Solver) rebuildLinkVolumes() {
	for i := range s.Net.Links {
		for p := range s.Net.Links[i].Vol {
			s.Net.Links[i].Vol[p] = 0
		}
	}
	for _, key := range s.Pool.Keys() {
		cv, _ := s.Pool.Get(key)
		pce := 1.0
		if key.AgentType >= 0 && key.AgentType < len(s.AgentTypes) {
			pce = s.AgentTypes[key.AgentType].PCE
		}
		for _, c := range cv.Columns {
			if c.Volume <= 0 {
				continue
			}
			weighted := c.Volume * pce
			for _, li := range c.Links {
				s.Net.Links[li].Vol[key.Period] += weighted
			}
		}
	}
}
