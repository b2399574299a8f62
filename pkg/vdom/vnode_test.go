package vdom

import "testing"

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindComponent, "Component"},
		{KindRaw, "Raw"},
		{VKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVNodeAttrs(t *testing.T) {
	var nilNode *VNode
	if got := nilNode.Attrs(); got != nil {
		t.Errorf("nil.Attrs() = %v, want nil", got)
	}

	node := Div(ID("a"), Hidden(), Omit("title"))
	attrs := node.Attrs()
	if len(attrs) != 3 {
		t.Fatalf("len(Attrs()) = %d, want 3", len(attrs))
	}
	if !attrs[1].IsPresenceOnly() {
		t.Errorf("attrs[1] = %+v, want presence-only", attrs[1])
	}
	if !attrs[2].IsOmitted() {
		t.Errorf("attrs[2] = %+v, want omitted", attrs[2])
	}
}

func TestFuncComponent(t *testing.T) {
	c := Func(func() *VNode { return Text("hi") })
	if got := c.Render(); got.Text != "hi" {
		t.Errorf("Render().Text = %q, want hi", got.Text)
	}
}
