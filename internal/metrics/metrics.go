package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Observatory
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Upstream provider metrics
	ProviderRequestsTotal   prometheus.CounterVec
	ProviderRequestDuration prometheus.HistogramVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Pipeline metrics
	RowsProcessedTotal  prometheus.CounterVec
	RowsDroppedTotal    prometheus.CounterVec
	ReportBuildDuration prometheus.HistogramVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "observatory_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "observatory_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "observatory_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		ProviderRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "observatory_provider_requests_total",
				Help: "Total upstream analytics/gateway API requests by provider and outcome",
			},
			[]string{"provider", "outcome"},
		),
		ProviderRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "observatory_provider_request_duration_seconds",
				Help:    "Upstream API request latency in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"provider"},
		),

		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "observatory_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "observatory_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		RowsProcessedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "observatory_rows_processed_total",
				Help: "Total analytics rows consumed by report type",
			},
			[]string{"report"},
		),
		RowsDroppedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "observatory_rows_dropped_total",
				Help: "Total truncated/corrupt analytics rows dropped by report type",
			},
			[]string{"report"},
		),
		ReportBuildDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "observatory_report_build_duration_seconds",
				Help:    "End-to-end report build time in seconds",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"report"},
		),
	}
}
