package metrics_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hkbb/bnb"
	"github.com/katalvlaran/hkbb/instance"
	"github.com/katalvlaran/hkbb/metrics"
)

func TestSearchMetrics_Observe(t *testing.T) {
	m := metrics.NewSearchMetrics(prometheus.NewRegistry())

	m.Observe(bnb.Event{Kind: bnb.EventEvaluated, Depth: 3, Frontier: 5})
	m.Observe(bnb.Event{Kind: bnb.EventEvaluated, Depth: 1, Frontier: 6})
	m.Observe(bnb.Event{Kind: bnb.EventPruned, Frontier: 4})
	m.Observe(bnb.Event{Kind: bnb.EventIncumbent, Bound: 1234, Frontier: 4})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.NodesTotal.WithLabelValues("evaluated")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NodesTotal.WithLabelValues("pruned")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NodesTotal.WithLabelValues("incumbent")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.NodesTotal.WithLabelValues("accepted")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.FrontierSize))
	assert.Equal(t, 1234.0, testutil.ToFloat64(m.IncumbentLength))
	assert.Equal(t, 1, testutil.CollectAndCount(m.NodeDepth))
}

func TestSearchMetrics_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewSearchMetrics(reg)
	assert.Panics(t, func() { metrics.NewSearchMetrics(reg) })
}

func TestSearchMetrics_WithSolve(t *testing.T) {
	pts := []instance.Point{{X: 0, Y: 0}, {X: 30, Y: 5}, {X: 60, Y: 0}, {X: 55, Y: 40}, {X: 20, Y: 45}, {X: 10, Y: 20}, {X: 40, Y: 20}}
	in, err := instance.Euclidean(pts)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	m := metrics.NewSearchMetrics(reg)
	res, err := bnb.Solve(context.Background(), in, bnb.Options{Observer: m})
	require.NoError(t, err)

	assert.Equal(t, float64(res.Stats.Evaluated), testutil.ToFloat64(m.NodesTotal.WithLabelValues("evaluated")))
	assert.Equal(t, float64(res.Stats.Expanded), testutil.ToFloat64(m.NodesTotal.WithLabelValues("expanded")))
	assert.Equal(t, float64(res.Length), testutil.ToFloat64(m.IncumbentLength))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.FrontierSize))

	n, err := testutil.GatherAndCount(reg, "hkbb_search_nodes_total", "hkbb_search_node_depth")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 2)
}
