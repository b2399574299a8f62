package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Nested component
	KindRaw                    // Raw HTML (dangerous)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is a node in the markup tree.
type VNode struct {
	Kind     VKind     // Node type
	Tag      string    // Element tag name (e.g., "div")
	Props    Props     // Attribute values keyed by name
	Order    []string  // Attribute names in the order they were first supplied
	Children []*VNode  // Child nodes
	Text     string    // For KindText and KindRaw
	Comp     Component // For KindComponent
}

// Props holds attribute values keyed by attribute name.
type Props map[string]any

// Attr represents a single attribute.
//
// Value is usually a string. The boolean true marks a presence-only
// attribute that renders as a bare name. A nil Value (or false) means the
// attribute is omitted from rendered output.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// IsOmitted reports whether the attribute renders nothing.
func (a Attr) IsOmitted() bool {
	if a.Value == nil {
		return true
	}
	b, ok := a.Value.(bool)
	return ok && !b
}

// IsPresenceOnly reports whether the attribute renders as a bare name.
func (a Attr) IsPresenceOnly() bool {
	b, ok := a.Value.(bool)
	return ok && b
}

// Attrs returns the element's attributes in supply order.
func (v *VNode) Attrs() []Attr {
	if v == nil || len(v.Props) == 0 {
		return nil
	}
	out := make([]Attr, 0, len(v.Props))
	for _, key := range v.Order {
		if value, ok := v.Props[key]; ok {
			out = append(out, Attr{Key: key, Value: value})
		}
	}
	return out
}

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}
