// Package el is the markup DSL for hxattr.
//
// It re-exports the element constructors, attribute helpers and node helpers
// of pkg/vdom, plus rendering entry points, so templates need a single
// import next to the hx builders:
//
//	import (
//	    . "github.com/vango-dev/hxattr/el"
//	    "github.com/vango-dev/hxattr/hx"
//	)
//
//	handle := EnableHTMXMerging()
//	defer handle.Remove()
//
//	html, err := Render(Button(
//	    hx.Get("/clicked"),
//	    hx.Trigger("load"),
//	    hx.Trigger("click"),
//	    "Click me",
//	))
//	// <button hx-get="/clicked" hx-trigger="load, click">Click me</button>
package el
