package ue

import (
	"fmt"
	"math"

	"opendta/column"
)

// redistribute applies one outer iteration's per-OD volume
// redistribution after the TDSP phase (or, in the optimization-only
// phase, in place of it): MSA initialization for an OD that just gained
// a new column, gradient projection otherwise. k is the 0-based index of
// the current column-generation iteration (only meaningful for the MSA
// branch); s.iterTotal is the 0-based index across both phases, used for
// the gradient step size. columnGenPhase gates whether the MSA branch
// may fire at all: the optimization-only phase never introduces new
// columns, so it always takes the gradient-projection branch regardless
// of any marker left over from the final generation iteration.
func (s *Solver) redistribute(k int, columnGenPhase bool) error {
	for _, key := range s.Pool.Keys() {
		cv, _ := s.Pool.Get(key)
		if len(cv.Columns) == 0 {
			if cv.Q > 0 {
				return fmt.Errorf("%w: %+v", ErrEmptyPool, key)
			}
			continue
		}

		if columnGenPhase && cv.NewColumnAdded {
			msaRedistribute(cv, k)
		} else {
			if err := gradientProjectionStep(cv, s.iterTotal, s.Cfg.Epsilon); err != nil {
				return err
			}
		}
	}
	return nil
}

// msaRedistribute implements the method-of-successive-averages
// initialization: scale every pre-existing column by k/(k+1) and give
// every column AddOrMerge appended this iteration (cv.PendingNew) an
// equal share of the remaining q/(k+1). PendingNew identifies "new"
// columns directly rather than inferring it from Volume == 0, which a
// gradient-projection step can legitimately drive to zero on an
// existing column.
func msaRedistribute(cv *column.ColumnVec, k int) {
	kf := float64(k)
	scaleExisting := kf / (kf + 1)

	newSet := make(map[*column.Column]bool, len(cv.PendingNew))
	for _, c := range cv.PendingNew {
		newSet[c] = true
	}

	share := cv.Q / (kf + 1) / float64(len(cv.PendingNew))
	for _, c := range cv.Columns {
		if newSet[c] {
			c.Volume = share
		} else {
			c.Volume *= scaleExisting
		}
	}
}

// gradientProjectionStep shifts flow from every above-minimum-cost
// column toward the minimum-cost column, proportional to its cost gap.
func gradientProjectionStep(cv *column.ColumnVec, iterTotal int, epsilon float64) error {
	minIdx := 0
	minCost := cv.Columns[0].TravelTime
	for i, c := range cv.Columns {
		if c.TravelTime < minCost {
			minCost = c.TravelTime
			minIdx = i
		}
	}
	if math.IsNaN(minCost) {
		return fmt.Errorf("%w: NaN travel time", ErrNumericFault)
	}

	step := 1.0 / (float64(iterTotal) + 2.0)
	scale := math.Max(minCost, epsilon)

	var shifted float64
	for i, c := range cv.Columns {
		if i == minIdx {
			continue
		}
		gap := c.TravelTime - minCost
		delta := step * gap / scale
		if delta < 0 {
			delta = 0
		}
		if delta > c.Volume {
			delta = c.Volume
		}
		c.Volume -= delta
		shifted += delta
		if c.Volume < 0 {
			return fmt.Errorf("%w: negative volume after gradient step", ErrNumericFault)
		}
	}
	cv.Columns[minIdx].Volume += shifted
	return nil
}
