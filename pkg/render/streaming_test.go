package render

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vango-dev/hxattr/pkg/vdom"
)

func TestStreamingRendererRenderPage(t *testing.T) {
	w := httptest.NewRecorder()
	sr := NewStreamingRenderer(w, RendererConfig{})

	page := PageData{
		Body:  vdom.Div(vdom.Text("Streamed Content")),
		Title: "Streaming Test",
	}

	if err := sr.RenderPage(page); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	html := w.Body.String()
	if !strings.HasPrefix(html, "<!DOCTYPE html>") {
		t.Errorf("should start with DOCTYPE")
	}
	if !strings.Contains(html, "<title>Streaming Test</title>") {
		t.Errorf("should contain title")
	}
	if !strings.Contains(html, "<div>Streamed Content</div>") {
		t.Errorf("should contain body content")
	}
	if !w.Flushed {
		t.Errorf("recorder should have been flushed")
	}
}

func TestStreamingRendererFlushes(t *testing.T) {
	var buf bytes.Buffer
	fw := &FlushableWriter{Writer: &buf}

	sr := NewStreamingRenderer(fw, RendererConfig{})
	if err := sr.RenderPage(PageData{Body: vdom.P("x")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// head, body, end
	if fw.FlushCount != 3 {
		t.Errorf("FlushCount = %d, want 3", fw.FlushCount)
	}
}

func TestStreamingRendererNilFlusher(t *testing.T) {
	var buf bytes.Buffer
	sr := NewStreamingRenderer(&buf, RendererConfig{})

	if err := sr.RenderPage(PageData{Body: vdom.Div("No Flush")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "<div>No Flush</div>") {
		t.Errorf("should render content, got %q", buf.String())
	}
}
