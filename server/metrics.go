package server

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the collectors exported on /metrics.
type Metrics struct {
	Searches  *prometheus.CounterVec
	PathSteps prometheus.Histogram
	Expanded  prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gridpath",
			Name:      "searches_total",
			Help:      "Path searches served, by result (found, not_found, bad_request).",
		}, []string{"result"}),
		PathSteps: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gridpath",
			Name:      "search_path_steps",
			Help:      "Length in steps of paths returned.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		Expanded: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gridpath",
			Name:      "search_expanded_cells",
			Help:      "Cells closed per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}
	reg.MustRegister(m.Searches, m.PathSteps, m.Expanded)
	return m
}
