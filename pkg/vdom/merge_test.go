package vdom

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func spaceJoin(names ...string) MergeFunc {
	return func(prev *Attr, next Attr) (Attr, bool) {
		if prev == nil {
			return Attr{}, false
		}
		for _, n := range names {
			if next.Key == n {
				return Attr{Key: next.Key, Value: prev.Value.(string) + " " + next.Value.(string)}, true
			}
		}
		return Attr{}, false
	}
}

func TestResolveWithoutHandlersLastWriteWins(t *testing.T) {
	reg := NewMergeRegistry(nil)
	prev := ID("a")

	got := reg.Resolve(&prev, ID("b"))
	if got.Value != "b" {
		t.Errorf("Resolve() = %v, want b", got.Value)
	}
}

func TestResolveNilRegistry(t *testing.T) {
	var reg *MergeRegistry
	prev := ID("a")
	if got := reg.Resolve(&prev, ID("b")); got.Value != "b" {
		t.Errorf("Resolve() = %v, want b", got.Value)
	}
}

func TestRegisterIsIdempotent(t *testing.T) {
	reg := NewMergeRegistry(nil)
	reg.Register("class", spaceJoin("class"))
	reg.Register("class", spaceJoin("class"))

	if reg.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", reg.Len())
	}

	node := NewElement("div", reg, Class("a"), Class("b"))
	if got := node.Props["class"]; got != "a b" {
		t.Errorf("class = %q, want %q", got, "a b")
	}
}

func TestRegisterReplaceKeepsPosition(t *testing.T) {
	reg := NewMergeRegistry(nil)
	var calls []string
	record := func(name string) MergeFunc {
		return func(prev *Attr, next Attr) (Attr, bool) {
			calls = append(calls, name)
			return Attr{}, false
		}
	}
	reg.Register("first", record("first"))
	reg.Register("second", record("second"))
	reg.Register("first", record("first-again"))

	prev := ID("a")
	reg.Resolve(&prev, ID("b"))

	want := []string{"first-again", "second"}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Errorf("handler order mismatch (-want +got):\n%s", diff)
	}
}

func TestHandleRemove(t *testing.T) {
	reg := NewMergeRegistry(nil)
	h := reg.Register("class", spaceJoin("class"))

	if !reg.Registered("class") {
		t.Fatal("expected class handler to be registered")
	}
	if h.Name() != "class" {
		t.Errorf("Name() = %q, want class", h.Name())
	}

	h.Remove()
	h.Remove()

	if reg.Registered("class") {
		t.Error("expected class handler to be removed")
	}
	node := NewElement("div", reg, Class("a"), Class("b"))
	if got := node.Props["class"]; got != "b" {
		t.Errorf("class = %q, want %q", got, "b")
	}

	var nilHandle *MergeHandle
	nilHandle.Remove()
}

func TestFirstClaimingHandlerWins(t *testing.T) {
	reg := NewMergeRegistry(nil)
	reg.Register("upper", func(prev *Attr, next Attr) (Attr, bool) {
		if prev == nil {
			return Attr{}, false
		}
		return Attr{Key: next.Key, Value: strings.ToUpper(next.Value.(string))}, true
	})
	reg.Register("join", spaceJoin("class"))

	node := NewElement("div", reg, Class("a"), Class("b"))
	if got := node.Props["class"]; got != "B" {
		t.Errorf("class = %q, want %q", got, "B")
	}
}

func TestHandlerSeesNilPrevForFirstAttribute(t *testing.T) {
	reg := NewMergeRegistry(nil)
	var prevs []*Attr
	reg.Register("spy", func(prev *Attr, next Attr) (Attr, bool) {
		prevs = append(prevs, prev)
		return Attr{}, false
	})

	NewElement("div", reg, ID("a"), ID("b"))

	if len(prevs) != 2 {
		t.Fatalf("handler called %d times, want 2", len(prevs))
	}
	if prevs[0] != nil {
		t.Errorf("first call prev = %+v, want nil", prevs[0])
	}
	if prevs[1] == nil || prevs[1].Value != "a" {
		t.Errorf("second call prev = %+v, want id=a", prevs[1])
	}
}

func TestRegistryConcurrentUse(t *testing.T) {
	reg := NewMergeRegistry(nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			reg.Register("class", spaceJoin("class"))
		}()
		go func() {
			defer wg.Done()
			NewElement("div", reg, Class("a"), Class("b"))
		}()
	}
	wg.Wait()

	if reg.Len() != 1 {
		t.Errorf("Len() = %d, want 1", reg.Len())
	}
}
