// Package metrics exports branch-and-bound search progress as Prometheus
// metrics.
//
// SearchMetrics implements bnb.Observer:
//
//	m := metrics.NewSearchMetrics(prometheus.NewRegistry())
//	res, err := bnb.Solve(ctx, in, bnb.Options{Observer: m})
//
// All metric operations are safe for concurrent use.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/hkbb/bnb"
)

const (
	namespace = "hkbb"
	subsystem = "search"
)

// SearchMetrics holds the search collectors.
type SearchMetrics struct {
	// NodesTotal counts node outcomes.
	// Labels: outcome (evaluated, infeasible, pruned, accepted, expanded, incumbent)
	NodesTotal *prometheus.CounterVec

	// FrontierSize is the number of open subproblems after the last event.
	FrontierSize prometheus.Gauge

	// IncumbentLength is the length of the best tour found so far.
	IncumbentLength prometheus.Gauge

	// NodeDepth is the depth distribution of evaluated nodes.
	NodeDepth prometheus.Histogram
}

// NewSearchMetrics creates the collectors and registers them with reg.
// It panics when reg already holds collectors with the same names.
func NewSearchMetrics(reg prometheus.Registerer) *SearchMetrics {
	f := promauto.With(reg)

	return &SearchMetrics{
		NodesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "nodes_total",
				Help:      "Branch-and-bound nodes by outcome",
			},
			[]string{"outcome"},
		),
		FrontierSize: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "frontier_size",
			Help:      "Open subproblems in the frontier",
		}),
		IncumbentLength: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "incumbent_length",
			Help:      "Length of the best tour found so far",
		}),
		NodeDepth: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "node_depth",
			Help:      "Depth of evaluated nodes in the search tree",
			Buckets:   prometheus.LinearBuckets(0, 4, 16),
		}),
	}
}

// Observe records ev.
func (m *SearchMetrics) Observe(ev bnb.Event) {
	m.NodesTotal.WithLabelValues(ev.Kind.String()).Inc()
	m.FrontierSize.Set(float64(ev.Frontier))
	switch ev.Kind {
	case bnb.EventEvaluated:
		m.NodeDepth.Observe(float64(ev.Depth))
	case bnb.EventIncumbent:
		m.IncumbentLength.Set(float64(ev.Bound))
	}
}

var _ bnb.Observer = (*SearchMetrics)(nil)
