package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/vango-dev/hxattr/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer handles server-side rendering of VNode trees to HTML.
// A Renderer holds no per-render state and may be shared between goroutines.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a VNode tree to a complete HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0)
}

// RenderOpenTag renders only the opening tag of an element, attributes
// included. Void elements produce their complete markup.
func (r *Renderer) RenderOpenTag(node *vdom.VNode) (string, error) {
	if node == nil || node.Kind != vdom.KindElement {
		return "", fmt.Errorf("render: open tag requires an element, got %v", kindOf(node))
	}
	var buf bytes.Buffer
	if err := r.writeOpenTag(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		return writeEscaped(w, node.Text, false)
	case vdom.KindFragment:
		return r.renderChildren(w, node, depth)
	case vdom.KindComponent:
		if node.Comp != nil {
			return r.renderNode(w, node.Comp.Render(), depth)
		}
		return nil
	case vdom.KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int) error {
	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if err := r.writeOpenTag(w, node); err != nil {
		return err
	}

	if isVoidElement(node.Tag) {
		if r.config.Pretty {
			w.Write([]byte{'\n'})
		}
		return nil
	}

	hasBlockChildren := len(node.Children) > 0 && !isInlineElement(node.Tag)
	if r.config.Pretty && hasBlockChildren {
		w.Write([]byte{'\n'})
	}

	if err := r.renderChildren(w, node, depth+1); err != nil {
		return err
	}

	if r.config.Pretty && hasBlockChildren {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "</%s>", node.Tag); err != nil {
		return err
	}
	if r.config.Pretty {
		w.Write([]byte{'\n'})
	}
	return nil
}

func (r *Renderer) renderChildren(w io.Writer, node *vdom.VNode, depth int) error {
	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) writeOpenTag(w io.Writer, node *vdom.VNode) error {
	if _, err := io.WriteString(w, "<"+node.Tag); err != nil {
		return err
	}
	if err := renderAttributes(w, node); err != nil {
		return err
	}
	_, err := w.Write([]byte{'>'})
	return err
}

// renderAttributes renders attributes in the order they were supplied.
// Props without an Order entry (hand-built nodes) follow in sorted order.
//
// nil and false values are dropped, true renders as a bare name and every
// other value renders as name="escaped value".
func renderAttributes(w io.Writer, node *vdom.VNode) error {
	if len(node.Props) == 0 {
		return nil
	}

	for _, key := range attributeKeys(node) {
		value := node.Props[key]

		switch v := value.(type) {
		case nil:
			continue
		case bool:
			if !v {
				continue
			}
			if _, err := io.WriteString(w, " "+key); err != nil {
				return err
			}
			continue
		}

		if _, err := io.WriteString(w, " "+key+`="`); err != nil {
			return err
		}
		if err := writeEscaped(w, attrToString(value), true); err != nil {
			return err
		}
		if _, err := w.Write([]byte{'"'}); err != nil {
			return err
		}
	}
	return nil
}

func attributeKeys(node *vdom.VNode) []string {
	keys := make([]string, 0, len(node.Props))
	seen := make(map[string]bool, len(node.Props))
	for _, key := range node.Order {
		if _, ok := node.Props[key]; ok && !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	if len(keys) == len(node.Props) {
		return keys
	}

	var rest []string
	for key := range node.Props {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

// attrToString converts a non-boolean attribute value to a string.
func attrToString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func kindOf(node *vdom.VNode) string {
	if node == nil {
		return "nil"
	}
	return node.Kind.String()
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		w.Write([]byte(r.config.Indent))
	}
}
