package hx

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vango-dev/hxattr/pkg/render"
	"github.com/vango-dev/hxattr/pkg/vdom"
)

// openTag builds an input with a private registry that has Merge installed
// and renders its opening tag.
func openTag(t *testing.T, args ...any) string {
	t.Helper()
	reg := vdom.NewMergeRegistry(nil)
	Install(reg)
	got, err := render.NewRenderer(render.RendererConfig{}).RenderOpenTag(vdom.NewElement("input", reg, args...))
	if err != nil {
		t.Fatalf("RenderOpenTag: %v", err)
	}
	return got
}

func TestMergeClassification(t *testing.T) {
	tests := []struct {
		name string
		want MergeClass
	}{
		{"hx-select-oob", CommaJoined},
		{"hx-trigger", CommaJoined},
		{"hx-disabled-elt", CommaJoined},
		{"hx-ext", CommaJoined},
		{"hx-params", CommaJoined},
		{"hx-disinherit", SpaceJoined},
		{"hx-inherit", SpaceJoined},
		{"data-hx-trigger", CommaJoined},
		{"data-hx-inherit", SpaceJoined},
		{"hx-get", NoMerge},
		{"hx-swap", NoMerge},
		{"class", NoMerge},
		{"", NoMerge},
	}

	for _, tt := range tests {
		if got := ClassOf(tt.name); got != tt.want {
			t.Errorf("ClassOf(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMergeClassSeparator(t *testing.T) {
	if got := CommaJoined.Separator(); got != ", " {
		t.Errorf("CommaJoined.Separator() = %q, want %q", got, ", ")
	}
	if got := SpaceJoined.Separator(); got != " " {
		t.Errorf("SpaceJoined.Separator() = %q, want %q", got, " ")
	}
	if got := NoMerge.Separator(); got != "" {
		t.Errorf("NoMerge.Separator() = %q, want empty", got)
	}
	if NoMerge.String() != "no-merge" || CommaJoined.String() != "comma-joined" || SpaceJoined.String() != "space-joined" {
		t.Error("unexpected MergeClass names")
	}
}

func TestNames(t *testing.T) {
	comma := []string{"hx-disabled-elt", "hx-ext", "hx-params", "hx-select-oob", "hx-trigger"}
	if diff := cmp.Diff(comma, Names(CommaJoined)); diff != "" {
		t.Errorf("Names(CommaJoined) mismatch (-want +got):\n%s", diff)
	}
	space := []string{"hx-disinherit", "hx-inherit"}
	if diff := cmp.Diff(space, Names(SpaceJoined)); diff != "" {
		t.Errorf("Names(SpaceJoined) mismatch (-want +got):\n%s", diff)
	}
	if got := Names(NoMerge); len(got) != 0 {
		t.Errorf("Names(NoMerge) = %v, want none", got)
	}
}

func TestMerge(t *testing.T) {
	str := func(key, value string) *vdom.Attr { return &vdom.Attr{Key: key, Value: value} }

	tests := []struct {
		name   string
		prev   *vdom.Attr
		next   vdom.Attr
		want   vdom.Attr
		merged bool
	}{
		{"first occurrence", nil, Trigger("load"), vdom.Attr{}, false},
		{"comma", str("hx-trigger", "load"), Trigger("click"), vdom.Attr{Key: "hx-trigger", Value: "load, click"}, true},
		{"space", str("hx-inherit", "hx-get"), Inherit(InheritTarget), vdom.Attr{Key: "hx-inherit", Value: "hx-get hx-target"}, true},
		{"data prefixed", str("data-hx-ext", "sse"), WithDataPrefix(Ext("ws")), vdom.Attr{Key: "data-hx-ext", Value: "sse, ws"}, true},
		{"unclassified", str("hx-get", "/a"), Get("/b"), vdom.Attr{}, false},
		{"nil previous value", &vdom.Attr{Key: "hx-trigger"}, Trigger("click"), vdom.Attr{}, false},
		{"nil next value", str("hx-trigger", "load"), vdom.Omit("hx-trigger"), vdom.Attr{}, false},
		{"presence only", &vdom.Attr{Key: "hx-ext", Value: true}, Ext("sse"), vdom.Attr{}, false},
		{"empty strings join", str("hx-params", ""), Params(""), vdom.Attr{Key: "hx-params", Value: ", "}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Merge(tt.prev, tt.next)
			if ok != tt.merged {
				t.Fatalf("Merge() ok = %v, want %v", ok, tt.merged)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMergeDoesNotTouchInputs(t *testing.T) {
	prev := &vdom.Attr{Key: "hx-trigger", Value: "load"}
	next := Trigger("click")
	Merge(prev, next)
	if prev.Value != "load" || next.Value != "click" {
		t.Errorf("Merge mutated its inputs: prev=%v next=%v", prev.Value, next.Value)
	}
}

func TestSingleCallEqualsRepeatedCalls(t *testing.T) {
	values := []string{"#a", "#b:afterbegin", "this"}

	tests := []struct {
		name   string
		single func(v []string) vdom.Attr
		each   func(v string) vdom.Attr
		sep    string
	}{
		{
			name: "hx-select-oob",
			single: func(v []string) vdom.Attr {
				targets := make([]OOBTarget, len(v))
				for i := range v {
					targets[i] = OOBTarget(v[i])
				}
				return SelectOOB(targets...)
			},
			each: func(v string) vdom.Attr { return SelectOOB(OOBTarget(v)) },
			sep:  ", ",
		},
		{
			name:   "hx-trigger",
			single: func(v []string) vdom.Attr { return vdom.RawAttr("hx-trigger", strings.Join(v, ", ")) },
			each:   func(v string) vdom.Attr { return Trigger(v) },
			sep:    ", ",
		},
		{
			name:   "hx-disabled-elt",
			single: func(v []string) vdom.Attr { return DisabledElt(v...) },
			each:   func(v string) vdom.Attr { return DisabledElt(v) },
			sep:    ", ",
		},
		{
			name:   "hx-ext",
			single: func(v []string) vdom.Attr { return Ext(v...) },
			each:   func(v string) vdom.Attr { return Ext(v) },
			sep:    ", ",
		},
		{
			name:   "hx-params",
			single: func(v []string) vdom.Attr { return Params(v...) },
			each:   func(v string) vdom.Attr { return Params(v) },
			sep:    ", ",
		},
		{
			name:   "hx-inherit",
			single: func(v []string) vdom.Attr { return Inherit(toInherited(v)...) },
			each:   func(v string) vdom.Attr { return Inherit(InheritedAttr(v)) },
			sep:    " ",
		},
		{
			name:   "hx-disinherit",
			single: func(v []string) vdom.Attr { return Disinherit(toInherited(v)...) },
			each:   func(v string) vdom.Attr { return Disinherit(InheritedAttr(v)) },
			sep:    " ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var repeated []any
			for _, v := range values {
				repeated = append(repeated, tt.each(v))
			}

			once := openTag(t, tt.single(values))
			many := openTag(t, repeated...)
			if once != many {
				t.Errorf("single call = %q, repeated calls = %q", once, many)
			}

			want := strings.Join(values, tt.sep)
			if got := extractAttrValue(t, many, tt.name); got != want {
				t.Errorf("%s = %q, want %q", tt.name, got, want)
			}
		})
	}
}

func toInherited(v []string) []InheritedAttr {
	out := make([]InheritedAttr, len(v))
	for i := range v {
		out[i] = InheritedAttr(v[i])
	}
	return out
}

func TestMergePreservesOrder(t *testing.T) {
	got := openTag(t, Ext("c"), Ext("a"), Ext("b"))
	if want := `<input hx-ext="c, a, b">`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMergeNilFallsBackToLastWins(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want string
	}{
		{"nil after value", []any{Trigger("load"), vdom.Omit("hx-trigger")}, `<input>`},
		{"value after nil", []any{vdom.Omit("hx-trigger"), Trigger("click")}, `<input hx-trigger="click">`},
		{"unclassified last wins", []any{Get("/a"), Get("/b")}, `<input hx-get="/b">`},
		{"history omitted", []any{History(false), History(true)}, `<input>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := openTag(t, tt.args...); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInstallIsIdempotent(t *testing.T) {
	reg := vdom.NewMergeRegistry(nil)
	first := Install(reg)
	second := Install(reg)

	if reg.Len() != 1 {
		t.Fatalf("registry has %d handlers, want 1", reg.Len())
	}
	if first.Name() != HandlerName || second.Name() != HandlerName {
		t.Errorf("handle names = %q, %q, want %q", first.Name(), second.Name(), HandlerName)
	}

	node := vdom.NewElement("div", reg, Trigger("load"), Trigger("click"))
	if got := node.Props["hx-trigger"]; got != "load, click" {
		t.Errorf("hx-trigger = %v, want %q", got, "load, click")
	}

	second.Remove()
	if reg.Registered(HandlerName) {
		t.Error("handler still registered after Remove")
	}
	node = vdom.NewElement("div", reg, Trigger("load"), Trigger("click"))
	if got := node.Props["hx-trigger"]; got != "click" {
		t.Errorf("hx-trigger after Remove = %v, want %q", got, "click")
	}
}

func TestRegisterUsesDefaultMergers(t *testing.T) {
	handle := Register()
	t.Cleanup(handle.Remove)

	if !vdom.DefaultMergers.Registered(HandlerName) {
		t.Fatal("Register did not install into DefaultMergers")
	}
	node := vdom.Div(Inherit(InheritTarget), Inherit(InheritSwap))
	if got := node.Props["hx-inherit"]; got != "hx-target hx-swap" {
		t.Errorf("hx-inherit = %v, want %q", got, "hx-target hx-swap")
	}
}

func TestMergeConcurrentElements(t *testing.T) {
	reg := vdom.NewMergeRegistry(nil)
	Install(reg)

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				node := vdom.NewElement("div", reg, Trigger("load"), Trigger("click"), Ext("sse"))
				if got := node.Props["hx-trigger"]; got != "load, click" {
					errs <- got.(string)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for got := range errs {
		t.Errorf("hx-trigger = %q, want %q", got, "load, click")
	}
}
