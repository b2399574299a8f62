package hx

import (
	"testing"
	"time"

	"github.com/vango-dev/hxattr/pkg/render"
	"github.com/vango-dev/hxattr/pkg/vdom"
)

func BenchmarkMerge(b *testing.B) {
	prev := vdom.Attr{Key: "hx-trigger", Value: "load"}
	next := Trigger("click", Delay(time.Second))

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Merge(&prev, next)
	}
}

func BenchmarkMergeUnclassified(b *testing.B) {
	prev := Target("#a")
	next := Target("#b")

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Merge(&prev, next)
	}
}

func BenchmarkElementManyTriggers(b *testing.B) {
	reg := vdom.NewMergeRegistry(nil)
	Install(reg)

	args := make([]any, 0, 20)
	for i := 0; i < 20; i++ {
		args = append(args, Trigger("event"+string(rune('a'+i))))
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		vdom.NewElement("div", reg, args...)
	}
}

func BenchmarkRenderMergedElement(b *testing.B) {
	reg := vdom.NewMergeRegistry(nil)
	Install(reg)
	renderer := render.NewRenderer(render.RendererConfig{})

	node := vdom.NewElement("form", reg,
		Post("/items"),
		Target("#items"),
		Swap(SwapBeforeEnd, Scroll(Bottom)),
		DisabledElt(Find("button")),
		DisabledElt(Find("input")),
		Trigger("submit"),
		Trigger("keyup", Filter("ctrlKey"), Changed()),
		Vals(Values{{Key: "source", Value: "form"}}),
	)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		renderer.RenderOpenTag(node)
	}
}
