// Package metrics provides Prometheus metrics for the slateview roster service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Roster lifecycle metrics
	documentLoads        prometheus.Counter
	documentLoadFailures prometheus.Counter
	documentLoadLatency  prometheus.Histogram

	// View metrics
	pageRenders       prometheus.Counter
	renderLatency     prometheus.Histogram
	tabSelections     *prometheus.CounterVec
	positionsTracked  prometheus.Gauge
	candidatesTracked prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "slateview",
		subsystem:        "site",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.documentLoads = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "document_loads_total",
		Help:      "Total number of successful roster document loads",
	})

	m.documentLoadFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "document_load_failures_total",
		Help:      "Total number of failed roster document loads",
	})

	m.documentLoadLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "document_load_latency_milliseconds",
		Help:      "Histogram of roster document fetch+decode latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.pageRenders = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "page_renders_total",
		Help:      "Total number of roster page renders",
	})

	m.renderLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "render_latency_milliseconds",
		Help:      "Histogram of page render latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.tabSelections = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "tab_selections_total",
			Help:      "Total number of position tab selections by outcome",
		},
		[]string{"outcome"},
	)

	m.positionsTracked = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "positions_tracked",
		Help:      "Number of positions in the loaded roster",
	})

	m.candidatesTracked = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "candidates_tracked",
		Help:      "Number of candidates in the loaded roster",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Current allocated heap memory in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutines",
		Help:      "Current number of goroutines",
	})
}

// RecordDocumentLoad records a successful roster load and its latency.
func RecordDocumentLoad(latencyMs float64) {
	globalManager.documentLoads.Inc()
	globalManager.documentLoadLatency.Observe(latencyMs)
}

// RecordDocumentLoadFailure records a failed roster load.
func RecordDocumentLoadFailure() {
	globalManager.documentLoadFailures.Inc()
}

// RecordPageRender records a completed page render and its latency.
func RecordPageRender(latencyMs float64) {
	globalManager.pageRenders.Inc()
	globalManager.renderLatency.Observe(latencyMs)
}

// RecordTabSelection records a tab selection; valid indicates whether the
// requested slug resolved to a known position.
func RecordTabSelection(valid bool) {
	outcome := "valid"
	if !valid {
		outcome = "ignored"
	}
	globalManager.tabSelections.WithLabelValues(outcome).Inc()
}

// UpdatePositionCount sets the positions-tracked gauge.
func UpdatePositionCount(count int) {
	globalManager.positionsTracked.Set(float64(count))
}

// UpdateCandidateCount sets the candidates-tracked gauge.
func UpdateCandidateCount(count int) {
	globalManager.candidatesTracked.Set(float64(count))
}

// RecordHTTPRequest records an HTTP request by endpoint, method and status.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// UpdateSystemMemoryUsage sets the heap memory gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom registry used for exposition.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
