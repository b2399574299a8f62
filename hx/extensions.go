package hx

import (
	"strings"

	"github.com/vango-dev/hxattr/pkg/vdom"
)

// Attributes of the htmx sse and ws extensions. They carry no hx- prefix and
// need Ext("sse") or Ext("ws") on the element or an ancestor.

// SSEConnect opens a server-sent events stream to url.
func SSEConnect(url string) vdom.Attr { return vdom.Attr{Key: "sse-connect", Value: url} }

// SSESwap swaps in the data of the named server-sent events.
func SSESwap(events ...string) vdom.Attr {
	return vdom.Attr{Key: "sse-swap", Value: strings.Join(events, ",")}
}

// SSEClose closes the stream when event arrives.
func SSEClose(event string) vdom.Attr { return vdom.Attr{Key: "sse-close", Value: event} }

// WSConnect opens a websocket to url.
func WSConnect(url string) vdom.Attr { return vdom.Attr{Key: "ws-connect", Value: url} }

// WSSend sends the enclosing form over the websocket when it is submitted.
func WSSend() vdom.Attr { return vdom.Attr{Key: "ws-send", Value: true} }

// Events fired by the ws extension, for On.
const (
	EventWSConnecting    = "htmx:wsConnecting"
	EventWSOpen          = "htmx:wsOpen"
	EventWSClose         = "htmx:wsClose"
	EventWSError         = "htmx:wsError"
	EventWSBeforeMessage = "htmx:wsBeforeMessage"
	EventWSAfterMessage  = "htmx:wsAfterMessage"
	EventWSConfigSend    = "htmx:wsConfigSend"
	EventWSBeforeSend    = "htmx:wsBeforeSend"
	EventWSAfterSend     = "htmx:wsAfterSend"
)
