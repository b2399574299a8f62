package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vango-dev/hxattr/pkg/vdom"
)

func TestRenderPage(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	page := PageData{
		Body:        vdom.Main(vdom.H1("Demo")),
		Title:       "A & B",
		Lang:        "de",
		Meta:        []MetaTag{{Name: "description", Content: "htmx demo"}},
		StyleSheets: []string{"/app.css"},
		Styles:      []string{"body{margin:0}"},
		Scripts: []ScriptTag{
			{Src: "https://unpkg.com/htmx.org@2.0.4", Integrity: "sha384-abc", CrossOrigin: "anonymous", Defer: true},
			{Inline: "htmx.logAll()"},
		},
	}

	var buf bytes.Buffer
	if err := renderer.RenderPage(&buf, page); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := buf.String()

	wants := []string{
		"<!DOCTYPE html>\n",
		`<html lang="de">`,
		`<meta charset="utf-8">`,
		`<meta name="viewport" content="width=device-width, initial-scale=1">`,
		"<title>A &amp; B</title>",
		`<meta name="description" content="htmx demo">`,
		`<link rel="stylesheet" href="/app.css">`,
		"<style>body{margin:0}</style>",
		`<script src="https://unpkg.com/htmx.org@2.0.4" integrity="sha384-abc" crossorigin="anonymous" defer></script>`,
		"<script>htmx.logAll()</script>",
		"<body>\n<main><h1>Demo</h1></main>\n</body>\n</html>\n",
	}
	for _, want := range wants {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q\n%s", want, html)
		}
	}
}

func TestRenderPageDefaultLang(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	var buf bytes.Buffer
	if err := renderer.RenderPage(&buf, PageData{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `<html lang="en">`) {
		t.Errorf("expected default lang, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "<title>") {
		t.Errorf("title should be omitted when empty")
	}
}
