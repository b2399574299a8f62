// This file re-exports vdom attribute helpers for the el package.
package el

import "github.com/vango-dev/hxattr/pkg/vdom"

func RawAttr(key string, value any) Attr {
	return vdom.RawAttr(key, value)
}
func ID(id string) Attr {
	return vdom.ID(id)
}
func Class(classes ...string) Attr {
	return vdom.Class(classes...)
}
func StyleAttr(style string) Attr {
	return vdom.StyleAttr(style)
}
func Data(key, value string) Attr {
	return vdom.Data(key, value)
}
func Role(role string) Attr {
	return vdom.Role(role)
}
func AriaLabel(label string) Attr {
	return vdom.AriaLabel(label)
}
func AriaLive(mode string) Attr {
	return vdom.AriaLive(mode)
}
func Hidden() Attr {
	return vdom.Hidden()
}
func Href(url string) Attr {
	return vdom.Href(url)
}
func Rel(rel string) Attr {
	return vdom.Rel(rel)
}
func Src(url string) Attr {
	return vdom.Src(url)
}
func Integrity(value string) Attr {
	return vdom.Integrity(value)
}
func Crossorigin(value string) Attr {
	return vdom.Crossorigin(value)
}
func Name(name string) Attr {
	return vdom.Name(name)
}
func Value(value string) Attr {
	return vdom.Value(value)
}
func Type(t string) Attr {
	return vdom.Type(t)
}
func Placeholder(text string) Attr {
	return vdom.Placeholder(text)
}
func Autocomplete(value string) Attr {
	return vdom.Autocomplete(value)
}
func Disabled() Attr {
	return vdom.Disabled()
}
func Required() Attr {
	return vdom.Required()
}
func Checked() Attr {
	return vdom.Checked()
}
func For(id string) Attr {
	return vdom.For(id)
}
func Action(url string) Attr {
	return vdom.Action(url)
}
func Method(method string) Attr {
	return vdom.Method(method)
}
func Charset(charset string) Attr {
	return vdom.Charset(charset)
}
func Content(content string) Attr {
	return vdom.Content(content)
}
func AttrIf(condition bool, a Attr) Attr {
	return vdom.AttrIf(condition, a)
}
func Omit(key string) Attr {
	return vdom.Omit(key)
}
