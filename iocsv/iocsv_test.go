package iocsv_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opendta/column"
	"opendta/iocsv"
	"opendta/model"
	"opendta/network"
	"opendta/output"
)

func TestReadNodes(t *testing.T) {
	const data = "node_id,zone_id,x_coord,y_coord\nA,Z1,0,0\nB,,1,1\n"
	recs, err := iocsv.ReadNodes(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "A", recs[0].ID)
	assert.Equal(t, "Z1", recs[0].ZoneID)
	assert.Equal(t, "", recs[1].ZoneID)
}

func TestReadLinks_DefaultsAndAllowedUses(t *testing.T) {
	const data = "link_id,from_node_id,to_node_id,length,lanes,free_speed,capacity,allowed_uses\n" +
		"L1,A,B,1.0,2,60,1000,\"auto,truck\"\n"
	recs, err := iocsv.ReadLinks(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, []string{"auto", "truck"}, recs[0].AllowedUses)
	assert.Nil(t, recs[0].AlphaBPR)
}

func TestReadDemand(t *testing.T) {
	const data = "o_zone_id,d_zone_id,volume\nZ1,Z2,800\n"
	rows, err := iocsv.ReadDemand(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Z1", rows[0].OriginZoneID)
	assert.Equal(t, 800.0, rows[0].Volume)
}

func TestWriteThenReadColumns_RoundTrips(t *testing.T) {
	net, err := network.NewFromRecords(
		[]network.NodeRecord{{ID: "A", ZoneID: "Z1"}, {ID: "B", ZoneID: "Z2"}},
		[]network.LinkRecord{{ID: "L1", FromNodeID: "A", ToNodeID: "B", Length: 1, FreeSpeed: 60, Capacity: 1000}},
	)
	require.NoError(t, err)
	require.NoError(t, net.Finalize())

	periods := []model.DemandPeriod{{Label: "AM", Index: 0, StartMinute: 0, EndMinute: 60}}
	agentTypes := []model.AgentType{{Name: "auto", Index: 0, VOT: 10, PCE: 1}}

	zA, _ := net.ZoneIndexOf("Z1")
	zB, _ := net.ZoneIndexOf("Z2")
	key := model.ODKey{Origin: zA, Destination: zB, Period: 0, AgentType: 0}

	pool := column.NewPool(len(net.Zones))
	cv := pool.GetOrCreate(key, 800)
	a, _ := net.NodeByID("A")
	b, _ := net.NodeByID("B")
	l1, _ := net.LinkByID("L1")
	c, _ := cv.AddOrMerge([]network.NodeIndex{a.Index, b.Index}, []network.LinkIndex{l1.Index})
	c.Volume = 800
	c.TravelTime = 10.614

	var buf strings.Builder
	require.NoError(t, iocsv.WriteColumns(&buf, net, periods, agentTypes, pool))

	pool2 := column.NewPool(len(net.Zones))
	require.NoError(t, iocsv.ReadColumns(strings.NewReader(buf.String()), net, periods, agentTypes, pool2))

	cv2, ok := pool2.Get(key)
	require.True(t, ok)
	require.Len(t, cv2.Columns, 1)
	assert.InDelta(t, 800.0, cv2.Columns[0].Volume, 1e-9)
	assert.InDelta(t, 10.614, cv2.Columns[0].TravelTime, 1e-9)
	assert.Equal(t, []network.NodeIndex{a.Index, b.Index}, cv2.Columns[0].Nodes)
}

func TestWriteLinkPerformanceUE(t *testing.T) {
	rows := []output.LinkPerformanceUERow{
		{LinkID: "L1", PeriodLabel: "AM", Volume: 800, TravelTime: 10.614, VOC: 0.8, Speed: 56.5},
	}
	var buf strings.Builder
	require.NoError(t, iocsv.WriteLinkPerformanceUE(&buf, rows))
	out := buf.String()
	assert.Contains(t, out, "link_id,period,volume,travel_time,VOC,speed")
	assert.Contains(t, out, "L1,AM,800.000,10.614,0.8000,56.500")
}

func TestWriteTrajectories(t *testing.T) {
	rows := []output.TrajectoryRow{
		{AgentIndex: 0, OriginZoneID: "Z1", DestZoneID: "Z2", DepartTimestamp: "07:00:00.000",
			NodeIDs: []string{"A", "B"}, ArrivalTimestamps: []string{"07:00:00.000", "07:01:00.000"}},
	}
	var buf strings.Builder
	require.NoError(t, iocsv.WriteTrajectories(&buf, rows))
	out := buf.String()
	assert.Contains(t, out, "0,Z1,Z2,07:00:00.000,A;B,07:00:00.000;07:01:00.000")
}
