package linkqueue

import "math"

// OutflowCapacityAt returns μ_a(τ), the maximum number of agents this
// link may release during interval tau: cap * interval / 3600,
// optionally scaled by a time-of-day profile factor.
func (lq *LinkQueue) OutflowCapacityAt(tau int) float64 {
	mu := lq.CapacityVPH * lq.IntervalSeconds / 3600.0
	if lq.CapacityProfile != nil && tau >= 0 && tau < len(lq.CapacityProfile) {
		mu *= lq.CapacityProfile[tau]
	}
	return mu
}

// outflowBudget resolves how many whole vehicles this link's
// OutflowCapacityAt(tau) permits releasing this interval, carrying any
// fractional remainder forward into outflowCarry. A link whose capacity
// is below one vehicle per interval therefore still releases at its
// true long-run rate (e.g. mu=0.5 releases on alternating intervals)
// rather than either stalling permanently or rounding up every tick.
// Capacity left unused this interval (the caller couldn't place a
// vehicle downstream) is not carried forward — a green light no one
// could use does not extend the next one.
func (lq *LinkQueue) outflowBudget(tau int) int {
	if !lq.budgetSet || lq.budgetTau != tau {
		if mu := lq.OutflowCapacityAt(tau); mu >= math.MaxInt32 {
			// Effectively unlimited (e.g. a connector's infinite capacity):
			// cap the budget instead of converting +Inf to an int.
			lq.outflowCarry = 0
			lq.budgetWhole = math.MaxInt32
		} else {
			lq.outflowCarry += mu
			whole := math.Floor(lq.outflowCarry)
			lq.outflowCarry -= whole
			lq.budgetWhole = int(whole)
		}
		lq.budgetTau = tau
		lq.budgetSet = true
	}
	return lq.budgetWhole
}

// TravelIntervals is ⌈fftt_a / interval_seconds⌉, the number of whole
// intervals a released agent spends in free-flow transit before
// reaching the downstream queue.
func (lq *LinkQueue) TravelIntervals() int {
	if lq.IntervalSeconds <= 0 {
		return 0
	}
	n := int(math.Ceil(lq.FFTTSeconds / lq.IntervalSeconds))
	if n < 0 {
		n = 0
	}
	return n
}

// AvailableSpace reports how many additional vehicles this link's
// storage can accept right now. Unlimited (math.Inf) for point-queue
// links with no storage limit configured.
func (lq *LinkQueue) AvailableSpace() float64 {
	if lq.StorageLimit <= 0 {
		return math.Inf(1)
	}
	avail := lq.StorageLimit - float64(lq.onLink)
	if avail < 0 {
		return 0
	}
	return avail
}

// BackwardWaveBound returns the kinematic-wave inflow cap this link
// permits for an interval of the given duration: w * AvailableSpace *
// interval_hours. Unlimited if no backward-wave speed is configured.
func (lq *LinkQueue) BackwardWaveBound(intervalHours float64) float64 {
	if lq.BackwardWaveSpeed <= 0 {
		return math.Inf(1)
	}
	return lq.BackwardWaveSpeed * lq.AvailableSpace() * intervalHours
}

// Depart enqueues an agent directly at the back of the FIFO with no
// transit delay, used for an agent's first link at its departure
// interval.
func (lq *LinkQueue) Depart(agentIdx int) {
	lq.queue = append(lq.queue, agentIdx)
	lq.onLink++
	lq.InflowCum++
}

// ScheduleArrival records that agentIdx, released from an upstream link
// at interval tau, will be admitted into this queue's FIFO once the
// free-flow transit delay elapses. The vehicle is reserved against this
// link's storage immediately (on_link increments here, not on admission)
// so a spillback check made while the vehicle is still in transit sees
// the space as already committed.
func (lq *LinkQueue) ScheduleArrival(tau, agentIdx int) {
	lq.pending = append(lq.pending, pendingArrival{ArrivesAt: tau + lq.TravelIntervals(), AgentIdx: agentIdx})
	lq.onLink++
	lq.InflowCum++
}

// AdmitArrivals moves every pending arrival due at or before tau into
// the FIFO. Pending arrivals are always appended in non-decreasing
// ArrivesAt order (constant per-link transit delay, FIFO release), so a
// prefix scan suffices. On-link occupancy was already reserved by
// ScheduleArrival, so this does not touch it.
func (lq *LinkQueue) AdmitArrivals(tau int) {
	i := 0
	for i < len(lq.pending) && lq.pending[i].ArrivesAt <= tau {
		lq.queue = append(lq.queue, lq.pending[i].AgentIdx)
		i++
	}
	lq.pending = lq.pending[i:]
}

// Release pulls up to n agents off the FIFO head (n clamped to queue
// length), decrements on-link occupancy, and accumulates outflow. The
// caller (simulation) is responsible for routing each released agent to
// its next link (or destination) and recording arrival timestamps.
func (lq *LinkQueue) Release(n int) []int {
	if n <= 0 || len(lq.queue) == 0 {
		return nil
	}
	if n > len(lq.queue) {
		n = len(lq.queue)
	}
	out := lq.queue[:n]
	lq.queue = lq.queue[n:]
	lq.onLink -= n
	lq.OutflowCum += n
	return out
}

// QueueLen reports how many agents currently wait in this link's FIFO.
func (lq *LinkQueue) QueueLen() int {
	return len(lq.queue)
}

// PeekFront returns the agent index at the head of the FIFO without
// removing it. Callers must check QueueLen() > 0 first; PeekFront
// panics on an empty queue rather than silently returning a zero value
// that could be mistaken for agent 0.
func (lq *LinkQueue) PeekFront() int {
	return lq.queue[0]
}

// OnLink reports the current on-link occupancy (queued plus reserved
// in-transit vehicles), the quantity the DTA density aggregation output
// and the spillback checks both consult.
func (lq *LinkQueue) OnLink() int {
	return lq.onLink
}

// ReleaseCount computes how many agents link a may release this
// interval given its own queue/capacity (via outflowBudget, so
// sub-one-vehicle-per-interval capacities are honored at their true
// long-run rate) and, for spatial-queue and kinematic-wave models, the
// downstream link's available space. downstream may be nil (agent
// terminates at this link, e.g. a zone's inbound connector, or the
// caller checks per-agent downstream admission itself) in which case no
// spillback bound applies.
func ReleaseCount(model FlowModel, upstream, downstream *LinkQueue, tau int, intervalHours float64) int {
	n := float64(upstream.outflowBudget(tau))
	if q := float64(upstream.QueueLen()); q < n {
		n = q
	}
	if downstream != nil {
		switch model {
		case PointQueue:
			// no downstream bound
		case SpatialQueue:
			if avail := downstream.AvailableSpace(); avail < n {
				n = avail
			}
		case KinematicWave:
			if avail := downstream.AvailableSpace(); avail < n {
				n = avail
			}
			if bound := downstream.BackwardWaveBound(intervalHours); bound < n {
				n = bound
			}
		}
	}
	if n < 0 {
		n = 0
	}
	return int(math.Floor(n))
}
