// ABOUTME: Prometheus instruments for the web viewer
// ABOUTME: Counts requests by outcome and times each search cycle

package web

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	registry       *prometheus.Registry
	requests       *prometheus.CounterVec
	searchDuration prometheus.Histogram
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &metrics{
		registry: reg,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "headlines_requests_total",
			Help: "Search cycles by outcome (idle, rendered, empty, failed)",
		}, []string{"outcome"}),
		searchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "headlines_search_duration_seconds",
			Help:    "Time from request start to rendered cards or status",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
		}),
	}
}
