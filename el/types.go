package el

import "github.com/vango-dev/hxattr/pkg/vdom"

// Type aliases for the VDOM primitives used by the DSL.
type VNode = vdom.VNode
type VKind = vdom.VKind
type Props = vdom.Props
type Attr = vdom.Attr
type Component = vdom.Component
type MergeFunc = vdom.MergeFunc
type MergeRegistry = vdom.MergeRegistry
type MergeHandle = vdom.MergeHandle
