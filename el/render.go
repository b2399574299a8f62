package el

import (
	"github.com/vango-dev/hxattr/hx"
	"github.com/vango-dev/hxattr/pkg/render"
	"github.com/vango-dev/hxattr/pkg/vdom"
)

var renderer = render.NewRenderer(render.RendererConfig{})

// Render renders node to HTML.
func Render(node *VNode) (string, error) {
	return renderer.RenderToString(node)
}

// RenderOpenTag renders only the opening tag of an element.
func RenderOpenTag(node *VNode) (string, error) {
	return renderer.RenderOpenTag(node)
}

// EnableHTMXMerging installs the htmx merge handler into the registry used
// by the element constructors in this package. Call Remove on the handle to
// uninstall it.
func EnableHTMXMerging() *MergeHandle {
	return hx.Register()
}

// NewMergeRegistry creates an empty registry for NewElement.
func NewMergeRegistry() *MergeRegistry {
	return vdom.NewMergeRegistry(nil)
}
