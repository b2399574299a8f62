package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "hxattr").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for request duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics middleware.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "hxattr",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// metrics holds the preview server's Prometheus metrics.
type metrics struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	htmxRequests     *prometheus.CounterVec
	fragmentsTotal   *prometheus.CounterVec
	wsConnections    prometheus.Gauge
	wsMessages       *prometheus.CounterVec
	wsErrors         *prometheus.CounterVec
	attributesMerged *prometheus.CounterVec
}

// globalMetrics is created on the first call to Prometheus. Metrics can only
// be registered once per registry, so later calls reuse it.
var (
	globalMetrics   *metrics
	globalMetricsMu sync.Mutex
)

func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests by route, method and status code",
			ConstLabels: config.ConstLabels,
		}, []string{"route", "method", "code"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"route", "method"}),

		htmxRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "htmx_requests_total",
			Help:        "Requests sent by htmx (HX-Request header) by route and boost flag",
			ConstLabels: config.ConstLabels,
		}, []string{"route", "boosted"}),

		fragmentsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "fragments_rendered_total",
			Help:        "HTML fragments rendered by name",
			ConstLabels: config.ConstLabels,
		}, []string{"fragment"}),

		wsConnections: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "websocket_connections",
			Help:        "Number of open WebSocket connections",
			ConstLabels: config.ConstLabels,
		}),

		wsMessages: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "websocket_messages_total",
			Help:        "WebSocket messages by direction",
			ConstLabels: config.ConstLabels,
		}, []string{"direction"}),

		wsErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "websocket_errors_total",
			Help:        "Total WebSocket errors by type",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),

		attributesMerged: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "attributes_merged_total",
			Help:        "Repeated htmx attributes joined by the merge handler, by attribute name",
			ConstLabels: config.ConstLabels,
		}, []string{"attribute"}),
	}
}

// Prometheus returns middleware that counts and times HTTP requests.
//
// Metrics collected:
//   - hxattr_http_requests_total: requests by route pattern, method and code
//   - hxattr_http_request_duration_seconds: request duration
//   - hxattr_htmx_requests_total: requests carrying the HX-Request header
//   - hxattr_fragments_rendered_total: fragments (RecordFragment)
//   - hxattr_websocket_connections: open sockets (RecordWebSocketOpen/Close)
//   - hxattr_websocket_messages_total: socket messages (RecordWebSocketMessage)
//   - hxattr_websocket_errors_total: socket errors (RecordWebSocketError)
//   - hxattr_attributes_merged_total: joined attributes (RecordMerge)
//
// Routes are labelled with their chi pattern, so /items/{id} is one series.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Use(middleware.Prometheus(middleware.WithNamespace("preview")))
//	r.Handle("/metrics", promhttp.Handler())
func Prometheus(opts ...MetricsOption) func(http.Handler) http.Handler {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	globalMetricsMu.Lock()
	if globalMetrics == nil {
		globalMetrics = initMetrics(config)
	}
	m := globalMetrics
	globalMetricsMu.Unlock()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			route := routePattern(r)

			m.requestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
			m.requestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
			if r.Header.Get("HX-Request") == "true" {
				m.htmxRequests.WithLabelValues(route, strconv.FormatBool(r.Header.Get("HX-Boosted") == "true")).Inc()
			}
		})
	}
}

// routePattern returns the chi route pattern for r, or "unmatched" outside
// a chi router. Raw paths would give unbounded label cardinality.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

// =============================================================================
// Metrics Recording Functions
// =============================================================================

// RecordFragment records a rendered HTML fragment.
func RecordFragment(name string) {
	if m := current(); m != nil {
		m.fragmentsTotal.WithLabelValues(name).Inc()
	}
}

// RecordWebSocketOpen records a new WebSocket connection.
func RecordWebSocketOpen() {
	if m := current(); m != nil {
		m.wsConnections.Inc()
	}
}

// RecordWebSocketClose records a closed WebSocket connection.
func RecordWebSocketClose() {
	if m := current(); m != nil {
		m.wsConnections.Dec()
	}
}

// RecordWebSocketMessage records a message; direction is "in" or "out".
func RecordWebSocketMessage(direction string) {
	if m := current(); m != nil {
		m.wsMessages.WithLabelValues(direction).Inc()
	}
}

// RecordWebSocketError records a WebSocket error.
func RecordWebSocketError(errorType string) {
	if m := current(); m != nil {
		m.wsErrors.WithLabelValues(errorType).Inc()
	}
}

// RecordMerge records an attribute joined by the merge handler.
func RecordMerge(attribute string) {
	if m := current(); m != nil {
		m.attributesMerged.WithLabelValues(attribute).Inc()
	}
}

func current() *metrics {
	globalMetricsMu.Lock()
	defer globalMetricsMu.Unlock()
	return globalMetrics
}

// ResetMetrics drops the metrics created by Prometheus so the next call
// registers fresh ones, for example against a new registry.
func ResetMetrics() {
	globalMetricsMu.Lock()
	globalMetrics = nil
	globalMetricsMu.Unlock()
}
