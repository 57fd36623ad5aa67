package orchestrator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opendta/orchestrator"
)

const settingsYAML = `
uses_existing_columns: false
assignment:
  column_generation_num: 2
  column_update_num: 1
simulation:
  enable: true
  resolution_in_second: 60
  duration_in_minute: 20
  traffic_flow_model: "point_queue"
output:
  enable: true
  save_link_performance_ue: true
  save_link_performance_dta: true
  save_trajectory: true
  save_ue_path_flow: true
demand_periods:
  - period: "AM"
    time_period: "0700_0800"
agent_types:
  - name: "auto"
    vot: 10
    pce: 1
    flow_type: true
demand_files:
  - file_name: "demand.csv"
    period: "AM"
    agent_type: "auto"
`

const nodeCSV = "node_id,zone_id,x_coord,y_coord\nA,Z1,0,0\nB,Z2,1,1\n"
const linkCSV = "link_id,from_node_id,to_node_id,length,lanes,free_speed,capacity,allowed_uses\nL1,A,B,1,1,60,1000,all\n"
const demandCSV = "o_zone_id,d_zone_id,volume\nZ1,Z2,800\n"

func writeScenario(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.yml"), []byte(settingsYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "node.csv"), []byte(nodeCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "link.csv"), []byte(linkCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "demand.csv"), []byte(demandCSV), 0o644))
}

func TestRunAll_SingleLinkScenarioProducesAllOutputs(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	writeScenario(t, inputDir)

	require.NoError(t, orchestrator.RunAll(inputDir, outputDir))

	for _, name := range []string{
		"link_performance_ue.csv",
		"link_performance_dta.csv",
		"trajectories.csv",
		"columns.csv",
	} {
		data, err := os.ReadFile(filepath.Join(outputDir, name))
		require.NoError(t, err, "missing output file %s", name)
		assert.NotEmpty(t, data)
	}
}

func TestHandle_PhaseByPhase(t *testing.T) {
	inputDir := t.TempDir()
	writeScenario(t, inputDir)

	h := orchestrator.New()
	require.NoError(t, h.ReadSettings(inputDir))
	require.NoError(t, h.ReadNetwork(inputDir))
	require.NoError(t, h.ReadDemands(inputDir))
	require.NoError(t, h.FinalizeNetwork())

	assert.False(t, h.UsesExistingColumns())
	assert.True(t, h.EnablesSimulation())
	assert.True(t, h.EnablesOutput())

	require.NoError(t, h.FindUE())
	require.NotNil(t, h.Pool)

	l1, ok := h.Net.LinkByID("L1")
	require.True(t, ok)
	assert.InDelta(t, 800.0, l1.Vol[0], 1e-6)

	require.NoError(t, h.RunSimulation())
	assert.NotNil(t, h.Engine)
	assert.Greater(t, len(h.Engine.Agents), 0)
}
