package hx

import (
	"strconv"
	"strings"

	"github.com/vango-dev/hxattr/pkg/vdom"
)

// Prefix is the namespace of every htmx attribute.
const Prefix = "hx-"

func attr(name string, value any) vdom.Attr {
	return vdom.Attr{Key: Prefix + name, Value: value}
}

// WithDataPrefix rewrites a to its data- spelling (data-hx-get), for markup
// that must validate as plain HTML. Merging treats both spellings the same.
func WithDataPrefix(a vdom.Attr) vdom.Attr {
	if a.Key == "" || strings.HasPrefix(a.Key, "data-") {
		return a
	}
	a.Key = "data-" + a.Key
	return a
}

// =============================================================================
// Requests
// =============================================================================

// Get issues a GET to url.
func Get(url string) vdom.Attr { return attr("get", url) }

// Post issues a POST to url.
func Post(url string) vdom.Attr { return attr("post", url) }

// Put issues a PUT to url.
func Put(url string) vdom.Attr { return attr("put", url) }

// Patch issues a PATCH to url.
func Patch(url string) vdom.Attr { return attr("patch", url) }

// Delete issues a DELETE to url.
func Delete(url string) vdom.Attr { return attr("delete", url) }

// =============================================================================
// History and URLs
// =============================================================================

// PushURL pushes url into the browser location history.
func PushURL(url string) vdom.Attr { return attr("push-url", url) }

// PushURLEnabled pushes the request URL when enabled, or blocks an inherited
// push when not.
func PushURLEnabled(enabled bool) vdom.Attr {
	return attr("push-url", strconv.FormatBool(enabled))
}

// ReplaceURL replaces the current browser location with url.
func ReplaceURL(url string) vdom.Attr { return attr("replace-url", url) }

// ReplaceURLEnabled is the boolean form of ReplaceURL.
func ReplaceURLEnabled(enabled bool) vdom.Attr {
	return attr("replace-url", strconv.FormatBool(enabled))
}

// History disables history snapshots for the page when enabled is false.
// History(true) is the htmx default, so it produces an omitted attribute.
func History(enabled bool) vdom.Attr {
	if enabled {
		return attr("history", nil)
	}
	return attr("history", "false")
}

// HistoryElt marks the element used as the history snapshot.
func HistoryElt() vdom.Attr { return attr("history-elt", true) }

// =============================================================================
// Response handling
// =============================================================================

// Select picks the content to swap in from the response.
func Select(selector string) vdom.Attr { return attr("select", selector) }

// OOBTarget is one entry of hx-select-oob: a selector with an optional swap
// style.
type OOBTarget string

// OOB builds an hx-select-oob entry that swaps selector with style.
func OOB(selector string, style SwapStyle) OOBTarget {
	return OOBTarget(selector + ":" + string(style))
}

// SelectOOB picks elements from the response to swap in out of band.
// Calling it once with several targets is the same as calling it once per
// target on one element.
func SelectOOB(targets ...OOBTarget) vdom.Attr {
	parts := make([]string, len(targets))
	for i, t := range targets {
		parts[i] = string(t)
	}
	return attr("select-oob", strings.Join(parts, ", "))
}

// Target sets the element the response is swapped into.
func Target(selector string) vdom.Attr { return attr("target", selector) }

// Preserve keeps the element unchanged across swaps. It needs an id.
func Preserve() vdom.Attr { return attr("preserve", true) }

// =============================================================================
// Boosting, prompts and validation
// =============================================================================

// Boost turns links and forms into AJAX requests.
func Boost(enabled bool) vdom.Attr { return attr("boost", strconv.FormatBool(enabled)) }

// Validate makes the element validate itself before a request.
func Validate(enabled bool) vdom.Attr { return attr("validate", strconv.FormatBool(enabled)) }

// Confirm shows a confirm() dialog before issuing the request.
func Confirm(message string) vdom.Attr { return attr("confirm", message) }

// Prompt shows a prompt() before issuing the request. The answer is sent in
// the HX-Prompt header.
func Prompt(message string) vdom.Attr { return attr("prompt", message) }

// Include adds the values of other elements to the request.
func Include(selector string) vdom.Attr { return attr("include", selector) }

// Indicator sets the element that gets the htmx-request class during a
// request.
func Indicator(selector string) vdom.Attr { return attr("indicator", selector) }

// Disable turns off htmx processing for the element and its children.
func Disable() vdom.Attr { return attr("disable", true) }

// DisabledElt adds the disabled attribute to the selected elements for the
// duration of a request.
func DisabledElt(selectors ...string) vdom.Attr {
	return attr("disabled-elt", strings.Join(selectors, ", "))
}

// =============================================================================
// Inheritance
// =============================================================================

func joinInherited(attrs []InheritedAttr) string {
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = string(a)
	}
	return strings.Join(parts, " ")
}

// Inherit lists the attributes children may inherit when inheritance is
// disabled globally.
func Inherit(attrs ...InheritedAttr) vdom.Attr {
	return attr("inherit", joinInherited(attrs))
}

// Disinherit lists the attributes children must not inherit.
func Disinherit(attrs ...InheritedAttr) vdom.Attr {
	return attr("disinherit", joinInherited(attrs))
}

// =============================================================================
// Request details
// =============================================================================

// Encoding sets the request body encoding.
func Encoding(enc EncodingType) vdom.Attr { return attr("encoding", string(enc)) }

// Ext enables htmx extensions on the element and its children.
func Ext(names ...string) vdom.Attr { return attr("ext", strings.Join(names, ", ")) }

// ExtIgnore disables inherited extensions.
func ExtIgnore(names ...string) vdom.Attr {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = "ignore:" + n
	}
	return attr("ext", strings.Join(parts, ", "))
}

// Special values for Params.
const (
	ParamsAll  = "*"
	ParamsNone = "none"
)

// Params limits the parameters submitted with a request to names.
func Params(names ...string) vdom.Attr {
	return attr("params", strings.Join(names, ", "))
}

// ParamsExcept submits every parameter except names.
func ParamsExcept(names ...string) vdom.Attr {
	return attr("params", "not "+strings.Join(names, ", "))
}

// Sync synchronizes requests between elements. SyncDefault leaves the
// strategy to htmx.
func Sync(selector string, strategy SyncStrategy) vdom.Attr {
	if strategy == SyncDefault {
		return attr("sync", selector)
	}
	return attr("sync", selector+":"+string(strategy))
}
