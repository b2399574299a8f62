// Package render converts vdom trees into HTML.
//
// The renderer handles:
//
//   - Text and attribute escaping
//   - Void element handling (input, br, img, etc.)
//   - The attribute value signals: nil and false are dropped, true renders
//     a bare attribute name, everything else renders name="value"
//   - Attribute order: the order in which attributes were first supplied
//   - Full page rendering with DOCTYPE, head, body
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// RenderOpenTag returns only the opening tag, which is the part that carries
// attributes:
//
//	tag, _ := renderer.RenderOpenTag(vdom.Input(hx.Get("/hello")))
//	// <input hx-get="/hello">
//
// # Streaming
//
// For large pages, use StreamingRenderer to flush content incrementally:
//
//	sr := render.NewStreamingRenderer(w, config)
//	err := sr.RenderPage(page)
//
// # Security
//
// All text content and attribute values are escaped. Raw HTML can be inserted
// using KindRaw nodes, but should only be used with trusted content.
package render
