// Package vdom provides the in-memory markup tree that hxattr attributes are
// applied to.
//
// # Core Types
//
// VNode represents elements, text, fragments, components and raw HTML.
// Attr is a single name/value pair. A string value renders as name="value",
// the boolean true renders as a bare name, and nil (or false) is dropped.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// # Attribute Merging
//
// When an element receives the same attribute name twice, the constructor
// asks a MergeRegistry how to combine them. The package-level constructors
// use DefaultMergers, which is empty until a caller installs handlers:
//
//	handle := vdom.DefaultMergers.Register("class", func(prev *vdom.Attr, next vdom.Attr) (vdom.Attr, bool) {
//	    ...
//	})
//	defer handle.Remove()
//
// With no handler claiming a pair, the later attribute replaces the earlier
// one. NewElement accepts an explicit registry for isolated use.
package vdom
