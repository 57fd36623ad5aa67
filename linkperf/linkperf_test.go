package linkperf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opendta/linkperf"
	"opendta/network"
)

func singleLinkNetwork(t *testing.T, capacity float64) *network.Network {
	t.Helper()
	nodes := []network.NodeRecord{{ID: "A"}, {ID: "B"}}
	links := []network.LinkRecord{
		{ID: "L1", FromNodeID: "A", ToNodeID: "B", Length: 10, FreeSpeed: 60, Capacity: capacity, AllowedUses: []string{"all"}},
	}
	net, err := network.NewFromRecords(nodes, links)
	require.NoError(t, err)
	require.NoError(t, net.ResolveAgentMasks([]string{"auto"}))
	net.AllocatePeriods(1)
	return net
}

func TestUpdateLinkTravelTime_ScenarioOneTwoLinkParallel(t *testing.T) {
	net := singleLinkNetwork(t, 1000)
	net.Links[0].Vol[0] = 800

	err := linkperf.UpdateLinkTravelTime(net, linkperf.Options{PeriodDurationHours: []float64{1.0}})
	require.NoError(t, err)

	// 10 * (1 + 0.15 * (800/1000)^4) = 10.614...
	assert.InDelta(t, 10.614, net.Links[0].TT[0], 1e-3)
	assert.InDelta(t, 10.614, net.Links[0].GC[0], 1e-3)
}

func TestUpdateLinkTravelTime_ZeroVolumeEqualsFreeFlow(t *testing.T) {
	net := singleLinkNetwork(t, 1000)
	err := linkperf.UpdateLinkTravelTime(net, linkperf.Options{PeriodDurationHours: []float64{1.0}})
	require.NoError(t, err)
	assert.Equal(t, net.Links[0].FFTT, net.Links[0].TT[0])
}

func TestUpdateLinkTravelTime_ZeroCapacityIsFatal(t *testing.T) {
	net := singleLinkNetwork(t, 0)
	net.Links[0].Vol[0] = 5
	err := linkperf.UpdateLinkTravelTime(net, linkperf.Options{PeriodDurationHours: []float64{1.0}})
	require.ErrorIs(t, err, linkperf.ErrZeroCapacity)
}

func TestUpdateLinkTravelTime_InactivePeriodSkipsCapacityCheck(t *testing.T) {
	net := singleLinkNetwork(t, 0)
	err := linkperf.UpdateLinkTravelTime(net, linkperf.Options{PeriodDurationHours: []float64{0}})
	require.NoError(t, err)
	assert.Equal(t, net.Links[0].FFTT, net.Links[0].TT[0])
}

func TestUpdateLinkTravelTime_AlwaysAtLeastFreeFlow(t *testing.T) {
	net := singleLinkNetwork(t, 1000)
	net.Links[0].Vol[0] = 1
	err := linkperf.UpdateLinkTravelTime(net, linkperf.Options{PeriodDurationHours: []float64{1.0}})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, net.Links[0].TT[0], net.Links[0].FFTT)
}

func TestUpdateLinkTravelTime_TollAddsGeneralizedCost(t *testing.T) {
	net := singleLinkNetwork(t, 1000)
	net.Links[0].Toll = []float64{6.0}
	err := linkperf.UpdateLinkTravelTime(net, linkperf.Options{PeriodDurationHours: []float64{1.0}, VOT: 12.0})
	require.NoError(t, err)
	// toll * 60 / VOT = 6*60/12 = 30 minutes added.
	assert.InDelta(t, net.Links[0].FFTT+30, net.Links[0].GC[0], 1e-9)
}
