// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "histbench_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "histbench_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Dataset Metrics
	DatasetRows = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "histbench_dataset_rows",
			Help: "Number of question rows loaded at startup",
		},
	)

	DatasetLoadDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "histbench_dataset_load_duration_seconds",
			Help: "Time taken to parse and normalize the dataset at startup",
		},
	)

	// Media Metrics
	MediaRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "histbench_media_requests_total",
			Help: "Media convert requests by outcome",
		},
		[]string{"outcome"}, // "converted", "passthrough", "not_found", "error"
	)

	ConversionCacheResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "histbench_conversion_cache_results_total",
			Help: "Conversion cache lookups by result",
		},
		[]string{"result"}, // "hit", "miss", "error"
	)
)

// RecordHTTPRequest records a completed HTTP request.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordDatasetLoad records the outcome of the startup load.
func RecordDatasetLoad(rows int, duration time.Duration) {
	DatasetRows.Set(float64(rows))
	DatasetLoadDuration.Set(duration.Seconds())
}
