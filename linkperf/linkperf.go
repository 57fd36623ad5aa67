// Package linkperf implements the Bureau of Public Roads (BPR) volume-delay
// function and the period-resolved travel-time update that closes the
// feedback loop of user equilibrium.
//
//	tt_a(p) = fftt_a * (1 + alpha_a * (vol_a(p) / (cap_a * duration_hours(p)))^beta_a)
//	gc_a(p) = tt_a(p) + toll_a(p) * 60 / VOT
//
// Notes on implementation choices:
//
//   - Capacity of zero in an active period (duration > 0) is fatal
//     (ErrZeroCapacity): a link with cap = 0 while it's actually open to traffic can't produce
//     a meaningful volume-delay ratio.
//   - A link with zero volume always has tt = fftt regardless of alpha/beta,
//     computed directly rather than through math.Pow(0, beta) to sidestep
//     0^0 edge cases when beta == 0.
package linkperf

import (
	"errors"
	"fmt"
	"math"

	"opendta/network"
)

// ErrZeroCapacity indicates a link has zero capacity in a period with
// positive duration, which is always fatal.
var ErrZeroCapacity = errors.New("linkperf: zero capacity in active period")

// ErrNumericFault indicates a travel time computed to NaN or +Inf.
var ErrNumericFault = errors.New("linkperf: non-finite travel time")

// Options configures UpdateLinkTravelTime.
type Options struct {
	// PeriodDurationHours maps period index to its duration in hours
	// (DemandPeriod.duration / 60). Required, len must equal
	// net.NumPeriods.
	PeriodDurationHours []float64

	// VOT maps agent-type index to value-of-time (currency/hour), used
	// only when a link carries a toll. Tolls are generalized-cost-only;
	// when VOT is unavailable for a toll computation in a per-agent-type
	// context, callers should pass a representative VOT or omit tolls.
	VOT float64
}

// UpdateLinkTravelTime recomputes TT and GC for every (link, period) pair
// from the link's current Vol. Called once per UE outer iteration.
func UpdateLinkTravelTime(net *network.Network, opts Options) error {
	if len(opts.PeriodDurationHours) != net.NumPeriods {
		return fmt.Errorf("linkperf: period duration table has %d entries, network has %d periods",
			len(opts.PeriodDurationHours), net.NumPeriods)
	}

	for i := range net.Links {
		l := &net.Links[i]
		for p := 0; p < net.NumPeriods; p++ {
			durH := opts.PeriodDurationHours[p]
			tt, err := bprTravelTime(l.FFTT, l.Vol[p], l.Capacity, durH, l.AlphaBPR, l.BetaBPR)
			if err != nil {
				return fmt.Errorf("linkperf: link %s period %d: %w", l.ID, p, err)
			}
			l.TT[p] = tt

			gc := tt
			if l.Toll != nil && p < len(l.Toll) && l.Toll[p] != 0 && opts.VOT > 0 {
				gc += l.Toll[p] * 60.0 / opts.VOT
			}
			if math.IsNaN(gc) || math.IsInf(gc, 0) {
				return fmt.Errorf("linkperf: link %s period %d: %w", l.ID, p, ErrNumericFault)
			}
			l.GC[p] = gc
		}
	}
	return nil
}

// bprTravelTime evaluates the BPR form for one (link, period). durationHours
// <= 0 means the period is inactive for this link; capacity is not
// evaluated in that case and travel time is simply free-flow.
func bprTravelTime(fftt, vol, cap, durationHours, alpha, beta float64) (float64, error) {
	if durationHours <= 0 {
		return fftt, nil
	}
	if cap <= 0 {
		return 0, ErrZeroCapacity
	}
	if vol <= 0 {
		return fftt, nil
	}

	ratio := vol / (cap * durationHours)
	tt := fftt * (1 + alpha*math.Pow(ratio, beta))
	if math.IsNaN(tt) || math.IsInf(tt, 0) {
		return 0, ErrNumericFault
	}
	if tt < fftt {
		// Floating-point underflow for ratio ~ 0 must never drop travel
		// time below the free-flow floor.
		tt = fftt
	}
	return tt, nil
}
