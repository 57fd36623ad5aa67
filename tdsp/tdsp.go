package tdsp

import (
	"container/list"
	"fmt"
	"math"

	"opendta/network"
)

var posInf = math.Inf(1)

// Search runs the label-correcting deque search from originZone's virtual
// origin anchor, over links whose AllowedMask permits agentType, using
// link.GC[period] as edge weight. Returns per-node distance and
// predecessor-link labels for every node in net.
func Search(net *network.Network, period, agentType int, originZone network.ZoneIndex) (*Result, error) {
	if agentType < 0 || agentType >= 32 {
		return nil, ErrAgentTypeOutOfRange
	}
	if int(originZone) < 0 || int(originZone) >= len(net.Zones) {
		return nil, ErrUnknownOriginZone
	}

	n := len(net.Nodes)
	r := &Result{
		Dist:     make([]float64, n),
		PredLink: make([]network.LinkIndex, n),
	}
	for i := range r.Dist {
		r.Dist[i] = posInf
		r.PredLink[i] = Unreached
	}

	origin := net.Zones[originZone].OriginAnchor
	r.Dist[origin] = 0

	inQueue := make([]bool, n)
	deque := list.New()
	deque.PushBack(origin)
	inQueue[origin] = true

	for deque.Len() > 0 {
		front := deque.Front()
		u := front.Value.(network.NodeIndex)
		deque.Remove(front)
		inQueue[u] = false

		uDist := r.Dist[u]
		for _, li := range net.Nodes[u].Outgoing {
			link := &net.Links[li]
			if !link.AllowedMask.Allows(agentType) {
				continue
			}
			if period < 0 || period >= len(link.GC) {
				return nil, fmt.Errorf("tdsp: link %s has no state for period %d", link.ID, period)
			}
			w := link.GC[period]
			v := link.HeadNode
			newDist := uDist + w
			if newDist >= r.Dist[v] {
				continue
			}
			r.Dist[v] = newDist
			r.PredLink[v] = li

			if inQueue[v] {
				continue
			}
			// SLF rule: push to front only if strictly better than the
			// label currently at the front of the deque.
			if front := deque.Front(); front != nil && newDist < r.Dist[front.Value.(network.NodeIndex)] {
				deque.PushFront(v)
			} else {
				deque.PushBack(v)
			}
			inQueue[v] = true
		}
	}

	return r, nil
}
