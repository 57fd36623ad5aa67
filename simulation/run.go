package simulation

import "opendta/linkqueue"

// Run executes the interval-stepped depart/advance loop from tau = 0 to
// TotalIntervals-1.
func (e *Engine) Run() {
	intervalHours := e.IntervalSeconds / 3600.0
	for tau := 0; tau < e.TotalIntervals; tau++ {
		e.depart(tau)
		e.advance(tau, intervalHours)
		e.record(tau)
	}
}

// record captures this interval's per-link outflow delta and resulting
// on-link occupancy into e.Recording, if attached.
func (e *Engine) record(tau int) {
	if e.Recording == nil {
		return
	}
	sample := e.Recording.Samples[tau]
	for i, q := range e.Queues {
		sample.Outflow[i] = q.OutflowCum - e.prevOutflow[i]
		sample.OnLink[i] = q.OnLink()
		e.prevOutflow[i] = q.OutflowCum
	}
}

// depart enqueues every agent scheduled to leave at tau onto the first
// link of its column path, in ascending agent-index order. SetupAgents
// rejects any column with an empty link path before an Agent is ever
// created, so every agent reaching depart has at least one link.
func (e *Engine) depart(tau int) {
	for _, idx := range e.tdAgents[tau] {
		a := e.Agents[idx]
		first := a.Links[0]
		e.Queues[first].Depart(idx)
		a.ArrivalInterval[0] = tau
	}
}

// advance processes every link in ascending index order: admits any
// transit-delay arrivals due this interval, then releases agents up to
// the outflow-capacity budget (linkqueue.ReleaseCount, called with no
// downstream since agents queued on one link can diverge to different
// next links), blocking at the first agent whose own next link cannot
// accept it (FIFO order is never broken).
func (e *Engine) advance(tau int, intervalHours float64) {
	for linkIdx := range e.Queues {
		q := e.Queues[linkIdx]
		q.AdmitArrivals(tau)

		budget := linkqueue.ReleaseCount(e.FlowModel, q, nil, tau, intervalHours)
		released := 0
		for released < budget && q.QueueLen() > 0 {
			agentIdx := q.PeekFront()
			a := e.Agents[agentIdx]
			nextCursor := a.cursor + 1

			if nextCursor >= len(a.Links) {
				q.Release(1)
				a.cursor = nextCursor
				released++
				continue
			}

			nextLink := a.Links[nextCursor]
			nq := e.Queues[nextLink]
			if !e.flowAllows(nq, intervalHours) {
				break
			}

			q.Release(1)
			nq.ScheduleArrival(tau, agentIdx)
			a.cursor = nextCursor
			a.ArrivalInterval[nextCursor] = tau + nq.TravelIntervals()
			released++
		}
	}
}

// flowAllows reports whether nq can accept one more vehicle this
// interval under the engine's configured flow model.
func (e *Engine) flowAllows(nq *linkqueue.LinkQueue, intervalHours float64) bool {
	switch e.FlowModel {
	case linkqueue.PointQueue:
		return true
	case linkqueue.SpatialQueue:
		return nq.AvailableSpace() >= 1
	case linkqueue.KinematicWave:
		return nq.AvailableSpace() >= 1 && nq.BackwardWaveBound(intervalHours) >= 1
	default:
		return true
	}
}
