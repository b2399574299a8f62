package el

import (
	"reflect"
	"testing"

	"github.com/vango-dev/hxattr/hx"
	"github.com/vango-dev/hxattr/pkg/vdom"
)

var (
	_ vdom.VNode     = VNode{}
	_ vdom.VKind     = VKind(0)
	_ vdom.Props     = Props{}
	_ vdom.Attr      = Attr{}
	_ vdom.Component = Component(nil)
	_ vdom.MergeFunc = MergeFunc(nil)
)

func TestElementConstructorsMatchVDOM(t *testing.T) {
	args := []any{
		vdom.ID("root"),
		vdom.Class("one", "two"),
		vdom.Hidden(),
		"hello",
		vdom.Span("child"),
	}

	got := Div(args...)
	want := vdom.Div(args...)

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Div() mismatch:\n got: %#v\nwant: %#v", got, want)
	}
}

func TestElementNamesMatchVDOM(t *testing.T) {
	cases := []struct {
		name string
		got  *VNode
		want *vdom.VNode
	}{
		{"button", Button("go"), vdom.Button("go")},
		{"input", Input(Type("text")), vdom.Input(vdom.Type("text"))},
		{"link", Link(Rel("stylesheet")), vdom.Link(vdom.Rel("stylesheet"))},
		{"custom", CustomElement("my-widget", "x"), vdom.CustomElement("my-widget", "x")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !reflect.DeepEqual(tc.got, tc.want) {
				t.Fatalf("%s mismatch:\n got: %#v\nwant: %#v", tc.name, tc.got, tc.want)
			}
		})
	}
}

func TestAttributeHelpersMatchVDOM(t *testing.T) {
	cases := []struct {
		name string
		got  Attr
		want vdom.Attr
	}{
		{"ID", ID("x"), vdom.ID("x")},
		{"Class", Class("a", "b"), vdom.Class("a", "b")},
		{"Data", Data("key", "value"), vdom.Data("key", "value")},
		{"Href", Href("/a"), vdom.Href("/a")},
		{"Disabled", Disabled(), vdom.Disabled()},
		{"AttrIf", AttrIf(false, ID("x")), vdom.AttrIf(false, vdom.ID("x"))},
		{"Omit", Omit("hx-get"), vdom.Omit("hx-get")},
		{"RawAttr", RawAttr("hx-on:click", "go()"), vdom.RawAttr("hx-on:click", "go()")},
	}

	for _, tc := range cases {
		if !reflect.DeepEqual(tc.got, tc.want) {
			t.Errorf("%s() = %#v, want %#v", tc.name, tc.got, tc.want)
		}
	}
}

func TestHelpers(t *testing.T) {
	if got := Text("hi"); got.Kind != vdom.KindText || got.Text != "hi" {
		t.Errorf("Text() = %#v", got)
	}
	if got := Textf("%d items", 3); got.Text != "3 items" {
		t.Errorf("Textf() = %q", got.Text)
	}
	if got := If(false, Text("x")); got != nil {
		t.Errorf("If(false) = %#v, want nil", got)
	}

	items := []string{"a", "b"}
	nodes := Range(items, func(item string, index int) *VNode { return Li(item) })
	if len(nodes) != 2 {
		t.Fatalf("Range() returned %d nodes", len(nodes))
	}

	html, err := Render(Ul(nodes))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if html != "<ul><li>a</li><li>b</li></ul>" {
		t.Errorf("Render() = %q", html)
	}

	html, _ = Render(Fragment(Func(func() *VNode { return Em("c") }), Raw("<b>r</b>")))
	if html != "<em>c</em><b>r</b>" {
		t.Errorf("Render(fragment) = %q", html)
	}
}

func TestEnableHTMXMerging(t *testing.T) {
	// Without the handler the last hx-trigger wins.
	before, _ := RenderOpenTag(Button(hx.Trigger("load"), hx.Trigger("click")))
	if before != `<button hx-trigger="click">` {
		t.Fatalf("before install = %q", before)
	}

	handle := EnableHTMXMerging()
	t.Cleanup(handle.Remove)

	got, err := RenderOpenTag(Button(hx.Get("/clicked"), hx.Trigger("load"), hx.Trigger("click")))
	if err != nil {
		t.Fatalf("RenderOpenTag() error: %v", err)
	}
	if got != `<button hx-get="/clicked" hx-trigger="load, click">` {
		t.Errorf("RenderOpenTag() = %q", got)
	}
}

func TestNewElementWithPrivateRegistry(t *testing.T) {
	reg := NewMergeRegistry()
	hx.Install(reg)

	got, _ := RenderOpenTag(NewElement("div", reg, hx.Inherit(hx.InheritTarget), hx.Inherit(hx.InheritSwap)))
	if got != `<div hx-inherit="hx-target hx-swap">` {
		t.Errorf("got %q", got)
	}
	if vdom.DefaultMergers.Registered(hx.HandlerName) {
		t.Error("private registry leaked into DefaultMergers")
	}
}
