package toast_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/vango-dev/hxattr/pkg/toast"
)

func trigger(t *testing.T, rec *httptest.ResponseRecorder) map[string]map[string]string {
	t.Helper()
	raw := rec.Header().Get(toast.Header)
	if raw == "" {
		t.Fatalf("%s header not set", toast.Header)
	}
	var events map[string]map[string]string
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		t.Fatalf("decode %q: %v", raw, err)
	}
	return events
}

func TestLevels(t *testing.T) {
	tests := []struct {
		name  string
		show  func(w *httptest.ResponseRecorder, msg string)
		level string
	}{
		{"success", func(w *httptest.ResponseRecorder, m string) { toast.Success(w, m) }, "success"},
		{"error", func(w *httptest.ResponseRecorder, m string) { toast.Error(w, m) }, "error"},
		{"warning", func(w *httptest.ResponseRecorder, m string) { toast.Warning(w, m) }, "warning"},
		{"info", func(w *httptest.ResponseRecorder, m string) { toast.Info(w, m) }, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.show(rec, "Item saved!")

			detail, ok := trigger(t, rec)[toast.EventName]
			if !ok {
				t.Fatalf("event %q missing", toast.EventName)
			}
			if detail["level"] != tt.level {
				t.Errorf("level = %q, want %q", detail["level"], tt.level)
			}
			if detail["message"] != "Item saved!" {
				t.Errorf("message = %q", detail["message"])
			}
		})
	}
}

func TestShowKeyOrder(t *testing.T) {
	rec := httptest.NewRecorder()
	toast.Show(rec, toast.TypeInfo, "hi")

	want := `{"hxattr:toast":{"level":"info","message":"hi"}}`
	if got := rec.Header().Get(toast.Header); got != want {
		t.Errorf("header = %s, want %s", got, want)
	}
}

func TestWithTitle(t *testing.T) {
	rec := httptest.NewRecorder()
	toast.WithTitle(rec, toast.TypeSuccess, "Settings", "Your changes have been saved.")

	detail := trigger(t, rec)[toast.EventName]
	if detail["title"] != "Settings" {
		t.Errorf("title = %q", detail["title"])
	}
	if detail["level"] != "success" {
		t.Errorf("level = %q", detail["level"])
	}
}

func TestLaterToastWins(t *testing.T) {
	rec := httptest.NewRecorder()
	toast.Info(rec, "first")
	toast.Warning(rec, "second")

	if n := len(rec.Header().Values(toast.Header)); n != 1 {
		t.Fatalf("got %d %s headers, want 1", n, toast.Header)
	}
	detail := trigger(t, rec)[toast.EventName]
	if detail["message"] != "second" {
		t.Errorf("message = %q, want second", detail["message"])
	}
}

func TestCustom(t *testing.T) {
	rec := httptest.NewRecorder()
	toast.Custom(rec, map[string]string{"level": "info", "action": "undo"})

	detail := trigger(t, rec)[toast.EventName]
	if detail["action"] != "undo" {
		t.Errorf("action = %q", detail["action"])
	}
}
