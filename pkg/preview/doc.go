// Package preview serves a demo page built entirely from hx builders, so the
// merged attributes can be inspected in a browser and exercised by htmx.
//
// Routes:
//
//	GET    /             demo page
//	GET    /clicked      fragment for the click demo
//	GET    /search?q=    attribute names matching q, with their merge class
//	POST   /items        appends an item and updates the counter out of band
//	DELETE /items/{id}   removes an item
//	GET    /ws           chat socket for the htmx ws extension
//	GET    /healthz      liveness
//	GET    /metrics      Prometheus metrics, when enabled
//
// The item handlers report their outcome as a toast in the HX-Trigger header.
//
// Chat messages are markdown. They are rendered with goldmark and sanitized
// with bluemonday before they reach other clients.
//
// Elements are built against a private merge registry, so running the
// preview leaves vdom.DefaultMergers untouched.
package preview
