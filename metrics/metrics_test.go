package metrics_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opendta/metrics"
)

func TestDump_ContainsRegisteredSeries(t *testing.T) {
	metrics.UEIterations.Add(3)
	metrics.ColumnPoolSize.Set(42)

	var buf strings.Builder
	require.NoError(t, metrics.Dump(&buf))

	out := buf.String()
	assert.Contains(t, out, "opendta_ue_iterations_total")
	assert.Contains(t, out, "opendta_column_pool_size 42")
}
