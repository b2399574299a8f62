package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func decodeLogLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var line map[string]any
		if err := dec.Decode(&line); err != nil {
			t.Fatalf("decode log line: %v", err)
		}
		lines = append(lines, line)
	}
	return lines
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(Logger(logger))
	r.Get("/clicked", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<p>clicked</p>"))
	})
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	req := httptest.NewRequest(http.MethodGet, "/clicked", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Trigger", "btn")
	r.ServeHTTP(httptest.NewRecorder(), req)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	lines := decodeLogLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2", len(lines))
	}

	first := lines[0]
	want := map[string]any{
		"level":      "INFO",
		"msg":        "request",
		"component":  "http",
		"method":     "GET",
		"path":       "/clicked",
		"status":     float64(200),
		"bytes":      float64(len("<p>clicked</p>")),
		"htmx":       true,
		"hx_trigger": "btn",
	}
	for k, v := range want {
		if first[k] != v {
			t.Errorf("%s = %v, want %v", k, first[k], v)
		}
	}
	if id, _ := first["request_id"].(string); id == "" {
		t.Error("request_id missing")
	}

	second := lines[1]
	if second["level"] != "ERROR" {
		t.Errorf("5xx level = %v, want ERROR", second["level"])
	}
	if _, ok := second["htmx"]; ok {
		t.Error("htmx field logged for a plain request")
	}
}

func TestLoggerNilUsesDefault(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	h := Logger(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if !bytes.Contains(buf.Bytes(), []byte("msg=request")) {
		t.Errorf("default logger not used, got %q", buf.String())
	}
}
