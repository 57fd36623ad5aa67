package simulation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opendta/column"
	"opendta/linkqueue"
	"opendta/model"
	"opendta/network"
	"opendta/simulation"
	"opendta/ue"
)

func buildSingleLinkNetwork(t *testing.T) *network.Network {
	t.Helper()
	nodes := []network.NodeRecord{{ID: "A", ZoneID: "Z1"}, {ID: "B", ZoneID: "Z2"}}
	links := []network.LinkRecord{
		{ID: "L1", FromNodeID: "A", ToNodeID: "B", Length: 1, FreeSpeed: 60, Capacity: 3600, AllowedUses: []string{"all"}},
	}
	net, err := network.NewFromRecords(nodes, links)
	require.NoError(t, err)
	require.NoError(t, net.ResolveAgentMasks([]string{"auto"}))
	require.NoError(t, net.Finalize())
	net.AllocatePeriods(1)
	return net
}

// buildPoolForSingleLink creates a one-column pool whose path is the
// full connector-in -> real link -> connector-out route Finalize
// synthesizes, the same shape tdsp.Search would hand the UE solver.
func buildPoolForSingleLink(t *testing.T, net *network.Network, volume float64) (*column.Pool, model.ODKey) {
	t.Helper()
	z1, ok := net.ZoneIndexOf("Z1")
	require.True(t, ok)
	z2, ok := net.ZoneIndexOf("Z2")
	require.True(t, ok)

	zone1 := net.Zones[z1]
	zone2 := net.Zones[z2]
	require.Len(t, zone1.ConnectorOut, 1)
	require.Len(t, zone2.ConnectorIn, 1)

	l1, ok := net.LinkByID("L1")
	require.True(t, ok)

	nodes := []network.NodeIndex{zone1.OriginAnchor, net.Nodes[l1.TailNode].Index, net.Nodes[l1.HeadNode].Index, zone2.DestAnchor}
	links := []network.LinkIndex{zone1.ConnectorOut[0], l1.Index, zone2.ConnectorIn[0]}

	pool := column.NewPool(len(net.Zones))
	key := model.ODKey{Origin: z1, Destination: z2, Period: 0, AgentType: 0}
	cv := pool.GetOrCreate(key, volume)
	c, added := cv.AddOrMerge(nodes, links)
	require.True(t, added)
	c.Volume = volume
	return pool, key
}

func TestEngine_PointQueue_AllAgentsArrive(t *testing.T) {
	net := buildSingleLinkNetwork(t)
	pool, _ := buildPoolForSingleLink(t, net, 100)

	agentTypes := []model.AgentType{{Name: "auto", Index: 0, VOT: 10, PCE: 1, FlowType: true}}
	periods := []model.DemandPeriod{{Label: "AM", Index: 0, StartMinute: 0, EndMinute: 60}}

	eng := simulation.NewEngine(net, simulation.Config{
		IntervalSeconds: 6,
		DurationMinutes: 90,
		FlowModel:       linkqueue.PointQueue,
	})
	require.NoError(t, eng.SetupAgents(pool, agentTypes, periods))
	require.Len(t, eng.Agents, 100)

	eng.Run()

	for _, a := range eng.Agents {
		assert.True(t, a.Done(), "agent %d should have completed its path", a.Index)
	}

	l1, _ := net.LinkByID("L1")
	assert.Equal(t, 100, eng.Queues[l1.Index].OutflowCum)
}

func TestEngine_ZeroVolumeColumnCreatesNoAgents(t *testing.T) {
	net := buildSingleLinkNetwork(t)
	pool, _ := buildPoolForSingleLink(t, net, 0)

	agentTypes := []model.AgentType{{Name: "auto", Index: 0, VOT: 10, PCE: 1, FlowType: true}}
	periods := []model.DemandPeriod{{Label: "AM", Index: 0, StartMinute: 0, EndMinute: 60}}

	eng := simulation.NewEngine(net, simulation.Config{IntervalSeconds: 6, DurationMinutes: 60, FlowModel: linkqueue.PointQueue})
	require.NoError(t, eng.SetupAgents(pool, agentTypes, periods))
	assert.Empty(t, eng.Agents)
}

func TestEngine_NonFlowAgentTypeExcluded(t *testing.T) {
	net := buildSingleLinkNetwork(t)
	pool, _ := buildPoolForSingleLink(t, net, 50)

	agentTypes := []model.AgentType{{Name: "auto", Index: 0, VOT: 10, PCE: 1, FlowType: false}}
	periods := []model.DemandPeriod{{Label: "AM", Index: 0, StartMinute: 0, EndMinute: 60}}

	eng := simulation.NewEngine(net, simulation.Config{IntervalSeconds: 6, DurationMinutes: 60, FlowModel: linkqueue.PointQueue})
	require.NoError(t, eng.SetupAgents(pool, agentTypes, periods))
	assert.Empty(t, eng.Agents)
}

func TestEngine_DeterministicAcrossRuns(t *testing.T) {
	run := func() []int {
		net := buildSingleLinkNetwork(t)
		pool, _ := buildPoolForSingleLink(t, net, 37)
		agentTypes := []model.AgentType{{Name: "auto", Index: 0, VOT: 10, PCE: 1, FlowType: true}}
		periods := []model.DemandPeriod{{Label: "AM", Index: 0, StartMinute: 0, EndMinute: 60}}
		eng := simulation.NewEngine(net, simulation.Config{IntervalSeconds: 6, DurationMinutes: 90, FlowModel: linkqueue.PointQueue})
		require.NoError(t, eng.SetupAgents(pool, agentTypes, periods))
		eng.Run()
		out := make([]int, len(eng.Agents))
		for i, a := range eng.Agents {
			out[i] = a.ArrivalInterval[len(a.ArrivalInterval)-1]
		}
		return out
	}

	a := run()
	b := run()
	require.Equal(t, a, b)
}

// TestEngine_ReplaysUEFlow loads the converged UE column pool onto the
// simulator and checks that the per-link simulated outflow over a long
// enough horizon reproduces the assignment volumes.
func TestEngine_ReplaysUEFlow(t *testing.T) {
	nodes := []network.NodeRecord{{ID: "A", ZoneID: "Z1"}, {ID: "B", ZoneID: "Z2"}}
	links := []network.LinkRecord{
		{ID: "L1", FromNodeID: "A", ToNodeID: "B", Length: 10, FreeSpeed: 60, Capacity: 1000, Lanes: 1, AllowedUses: []string{"all"}},
		{ID: "L2", FromNodeID: "A", ToNodeID: "B", Length: 10, FreeSpeed: 60, Capacity: 1000, Lanes: 1, AllowedUses: []string{"all"}},
	}
	net, err := network.NewFromRecords(nodes, links)
	require.NoError(t, err)
	require.NoError(t, net.ResolveAgentMasks([]string{"auto"}))
	require.NoError(t, net.Finalize())
	periods := []model.DemandPeriod{{Label: "AM", Index: 0, StartMinute: 0, EndMinute: 60}}
	net.AllocatePeriods(len(periods))
	agentTypes := []model.AgentType{{Name: "auto", Index: 0, VOT: 10, PCE: 1, FlowType: true}}

	z1, _ := net.ZoneIndexOf("Z1")
	z2, _ := net.ZoneIndexOf("Z2")
	demand := map[model.ODKey]float64{
		{Origin: z1, Destination: z2, Period: 0, AgentType: 0}: 1600,
	}

	cfg := ue.DefaultConfig()
	solver := ue.NewSolver(net, agentTypes, periods, demand, cfg)
	require.NoError(t, solver.Run(context.Background()))

	eng := simulation.NewEngine(net, simulation.Config{
		IntervalSeconds: 6,
		DurationMinutes: 120,
		FlowModel:       linkqueue.PointQueue,
	})
	require.NoError(t, eng.SetupAgents(solver.Pool, agentTypes, periods))
	eng.Run()

	for i := range net.Links {
		l := &net.Links[i]
		if l.IsConnector {
			continue
		}
		simulated := float64(eng.Queues[i].OutflowCum)
		assert.InDelta(t, l.Vol[0], simulated, 0.02*l.Vol[0],
			"link %s: simulated outflow should match assigned volume", l.ID)
	}
}
