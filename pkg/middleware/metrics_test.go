package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func metricGaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("gauge Write() error: %v", err)
	}
	if m.Gauge == nil {
		t.Fatal("expected gauge metric to have Gauge field")
	}
	return m.GetGauge().GetValue()
}

func metricHistogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := o.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T does not implement prometheus.Metric", o)
	}
	var m dto.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	if m.Histogram == nil {
		t.Fatal("expected histogram metric to have Histogram field")
	}
	return m.GetHistogram().GetSampleCount()
}

func newMetricsRouter(t *testing.T) *chi.Mux {
	t.Helper()
	ResetMetrics()
	t.Cleanup(ResetMetrics)

	r := chi.NewRouter()
	r.Use(Prometheus(WithRegistry(prometheus.NewRegistry())))
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("item"))
	})
	r.Get("/empty", func(w http.ResponseWriter, r *http.Request) {})
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	return r
}

func serve(h http.Handler, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPrometheusRecordsRequests(t *testing.T) {
	r := newMetricsRouter(t)

	serve(r, http.MethodGet, "/items/1", nil)
	serve(r, http.MethodGet, "/items/2", nil)
	serve(r, http.MethodGet, "/empty", nil)
	serve(r, http.MethodGet, "/boom", nil)
	serve(r, http.MethodGet, "/missing", nil)

	m := current()
	if m == nil {
		t.Fatal("metrics not initialized")
	}

	tests := []struct {
		route, code string
		want        float64
	}{
		{"/items/{id}", "200", 2},
		{"/empty", "200", 1},
		{"/boom", "500", 1},
	}
	for _, tt := range tests {
		if got := metricCounterValue(t, m.requestsTotal.WithLabelValues(tt.route, "GET", tt.code)); got != tt.want {
			t.Errorf("http_requests_total{route=%q,code=%q} = %v, want %v", tt.route, tt.code, got, tt.want)
		}
	}
	if got := metricHistogramCount(t, m.requestDuration.WithLabelValues("/items/{id}", "GET")); got != 2 {
		t.Errorf("duration samples = %d, want 2", got)
	}
}

func TestPrometheusCountsHTMXRequests(t *testing.T) {
	r := newMetricsRouter(t)

	serve(r, http.MethodGet, "/items/1", http.Header{"Hx-Request": {"true"}})
	serve(r, http.MethodGet, "/items/1", http.Header{"Hx-Request": {"true"}, "Hx-Boosted": {"true"}})
	serve(r, http.MethodGet, "/items/1", nil)

	m := current()
	if got := metricCounterValue(t, m.htmxRequests.WithLabelValues("/items/{id}", "false")); got != 1 {
		t.Errorf("htmx_requests_total{boosted=false} = %v, want 1", got)
	}
	if got := metricCounterValue(t, m.htmxRequests.WithLabelValues("/items/{id}", "true")); got != 1 {
		t.Errorf("htmx_requests_total{boosted=true} = %v, want 1", got)
	}
}

func TestPrometheusReusesMetrics(t *testing.T) {
	ResetMetrics()
	t.Cleanup(ResetMetrics)

	reg := prometheus.NewRegistry()
	Prometheus(WithRegistry(reg))
	first := current()

	// A second call must not register again; promauto would panic.
	Prometheus(WithRegistry(reg))
	if current() != first {
		t.Error("Prometheus created a second metrics set")
	}
}

func TestRecordFunctions(t *testing.T) {
	ResetMetrics()
	t.Cleanup(ResetMetrics)

	// No-ops before initialization.
	RecordFragment("x")
	RecordWebSocketOpen()
	RecordMerge("hx-trigger")

	Prometheus(WithRegistry(prometheus.NewRegistry()), WithNamespace("test"))
	m := current()

	RecordFragment("clicked")
	RecordFragment("clicked")
	RecordWebSocketOpen()
	RecordWebSocketOpen()
	RecordWebSocketClose()
	RecordWebSocketMessage("in")
	RecordWebSocketError("read")
	RecordMerge("hx-trigger")

	if got := metricCounterValue(t, m.fragmentsTotal.WithLabelValues("clicked")); got != 2 {
		t.Errorf("fragments_rendered_total = %v, want 2", got)
	}
	if got := metricGaugeValue(t, m.wsConnections); got != 1 {
		t.Errorf("websocket_connections = %v, want 1", got)
	}
	if got := metricCounterValue(t, m.wsMessages.WithLabelValues("in")); got != 1 {
		t.Errorf("websocket_messages_total = %v, want 1", got)
	}
	if got := metricCounterValue(t, m.wsErrors.WithLabelValues("read")); got != 1 {
		t.Errorf("websocket_errors_total = %v, want 1", got)
	}
	if got := metricCounterValue(t, m.attributesMerged.WithLabelValues("hx-trigger")); got != 1 {
		t.Errorf("attributes_merged_total = %v, want 1", got)
	}
}

func TestRoutePatternOutsideChi(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if got := routePattern(req); got != "unmatched" {
		t.Errorf("routePattern() = %q, want unmatched", got)
	}
}
