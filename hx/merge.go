package hx

import (
	"sort"
	"strings"

	"github.com/vango-dev/hxattr/pkg/vdom"
)

// HandlerName is the name Install registers the merge handler under.
const HandlerName = "hx"

// MergeClass says how repeated values of one attribute combine.
type MergeClass int

const (
	// NoMerge leaves repeated values to the host: the later value wins.
	NoMerge MergeClass = iota
	// CommaJoined joins repeated values with ", ".
	CommaJoined
	// SpaceJoined joins repeated values with " ".
	SpaceJoined
)

// String returns the class name.
func (c MergeClass) String() string {
	switch c {
	case CommaJoined:
		return "comma-joined"
	case SpaceJoined:
		return "space-joined"
	default:
		return "no-merge"
	}
}

// Separator returns the join separator, or "" for NoMerge.
func (c MergeClass) Separator() string {
	switch c {
	case CommaJoined:
		return ", "
	case SpaceJoined:
		return " "
	default:
		return ""
	}
}

var mergeClasses = map[string]MergeClass{
	"hx-select-oob":   CommaJoined,
	"hx-trigger":      CommaJoined,
	"hx-disabled-elt": CommaJoined,
	"hx-ext":          CommaJoined,
	"hx-params":       CommaJoined,
	"hx-disinherit":   SpaceJoined,
	"hx-inherit":      SpaceJoined,
}

// ClassOf returns the merge class of an attribute name. The data- prefixed
// spelling of an htmx attribute has the same class as the plain one.
func ClassOf(name string) MergeClass {
	return mergeClasses[strings.TrimPrefix(name, "data-")]
}

// Names returns the attribute names in class c, sorted.
func Names(c MergeClass) []string {
	var names []string
	for name, class := range mergeClasses {
		if class == c {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Merge is the merge handler for htmx attributes.
//
// It joins prev and next with the separator of next's class when both carry
// string values. In every other case (no previous value, either value nil,
// an unclassified name, non-string values) it returns false so the host's
// default applies.
func Merge(prev *vdom.Attr, next vdom.Attr) (vdom.Attr, bool) {
	if prev == nil || prev.Value == nil || next.Value == nil {
		return vdom.Attr{}, false
	}

	sep := ClassOf(next.Key).Separator()
	if sep == "" {
		return vdom.Attr{}, false
	}

	before, ok := prev.Value.(string)
	if !ok {
		return vdom.Attr{}, false
	}
	after, ok := next.Value.(string)
	if !ok {
		return vdom.Attr{}, false
	}

	return vdom.Attr{Key: next.Key, Value: before + sep + after}, true
}

// Install registers Merge with reg under HandlerName. Installing twice keeps a
// single handler.
func Install(reg *vdom.MergeRegistry) *vdom.MergeHandle {
	return reg.Register(HandlerName, Merge)
}

// Register installs Merge into vdom.DefaultMergers, the registry used by the
// vdom element constructors.
func Register() *vdom.MergeHandle {
	return Install(vdom.DefaultMergers)
}
