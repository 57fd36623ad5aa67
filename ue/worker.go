package ue

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"opendta/model"
	"opendta/network"
	"opendta/tdsp"
)

// columnGenerationPhase runs one TDSP per (period, agent type) for every
// origin zone with positive outbound demand, fanned out across a bounded
// worker pool, and merges the resulting shortest paths into the column
// pool. Each worker is handed a disjoint set of origin zones, so it
// writes only into that zone's pool shard — no lock is needed.
func (s *Solver) columnGenerationPhase(ctx context.Context) error {
	work := s.byOrigin()

	origins := make([]network.ZoneIndex, 0, len(work))
	for z := range work {
		origins = append(origins, z)
	}

	workers := s.Cfg.ThreadNums
	if workers <= 0 {
		workers = 1
	}
	if max := runtime.NumCPU(); workers > max {
		workers = max
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, z := range origins {
		z := z
		w := work[z]
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			return s.processOrigin(z, w)
		})
	}

	return g.Wait()
}

// processOrigin runs every distinct (period, agentType) search this
// origin needs and merges each reachable, positive-demand destination's
// shortest path into the pool's z-shard.
func (s *Solver) processOrigin(z network.ZoneIndex, w *originWork) error {
	for _, sk := range w.searches {
		res, err := tdsp.Search(s.Net, sk.Period, sk.AgentType, z)
		if err != nil {
			return err
		}
		for _, entry := range w.entries[sk] {
			destZone := s.Net.Zones[entry.Destination]
			if !res.Reachable(destZone.DestAnchor) {
				return fmt.Errorf("%w: origin=%d dest=%d period=%d agentType=%d",
					ErrUnreachableOD, z, entry.Destination, entry.Period, entry.AgentType)
			}
			nodes, _ := res.NodePath(s.Net, destZone.DestAnchor)
			links, _ := res.LinkPath(s.Net, destZone.DestAnchor)

			key := model.ODKey{
				Origin:      z,
				Destination: entry.Destination,
				Period:      entry.Period,
				AgentType:   entry.AgentType,
			}
			s.Pool.GetOrCreate(key, entry.Q).AddOrMerge(nodes, links)
		}
	}
	return nil
}
