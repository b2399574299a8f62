package hx

import (
	"regexp"
	"strings"

	"github.com/vango-dev/hxattr/pkg/vdom"
)

// htmx events, for On.
const (
	EventAbort                 = "htmx:abort"
	EventAfterOnLoad           = "htmx:afterOnLoad"
	EventAfterProcessNode      = "htmx:afterProcessNode"
	EventAfterRequest          = "htmx:afterRequest"
	EventAfterSettle           = "htmx:afterSettle"
	EventAfterSwap             = "htmx:afterSwap"
	EventBeforeCleanupElement  = "htmx:beforeCleanupElement"
	EventBeforeOnLoad          = "htmx:beforeOnLoad"
	EventBeforeProcessNode     = "htmx:beforeProcessNode"
	EventBeforeRequest         = "htmx:beforeRequest"
	EventBeforeSwap            = "htmx:beforeSwap"
	EventBeforeSend            = "htmx:beforeSend"
	EventBeforeTransition      = "htmx:beforeTransition"
	EventConfigRequest         = "htmx:configRequest"
	EventConfirm               = "htmx:confirm"
	EventHistoryCacheError     = "htmx:historyCacheError"
	EventHistoryCacheMiss      = "htmx:historyCacheMiss"
	EventHistoryCacheMissError = "htmx:historyCacheMissError"
	EventHistoryCacheMissLoad  = "htmx:historyCacheMissLoad"
	EventHistoryRestore        = "htmx:historyRestore"
	EventBeforeHistorySave     = "htmx:beforeHistorySave"
	EventLoad                  = "htmx:load"
	EventNoSSESourceError      = "htmx:noSSESourceError"
	EventOnLoadError           = "htmx:onLoadError"
	EventOOBAfterSwap          = "htmx:oobAfterSwap"
	EventOOBBeforeSwap         = "htmx:oobBeforeSwap"
	EventOOBErrorNoTarget      = "htmx:oobErrorNoTarget"
	EventPrompt                = "htmx:prompt"
	EventPushedIntoHistory     = "htmx:pushedIntoHistory"
	EventReplacedInHistory     = "htmx:replacedInHistory"
	EventResponseError         = "htmx:responseError"
	EventSendAbort             = "htmx:sendAbort"
	EventSendError             = "htmx:sendError"
	EventSSEError              = "htmx:sseError"
	EventSSEOpen               = "htmx:sseOpen"
	EventSwapError             = "htmx:swapError"
	EventTargetError           = "htmx:targetError"
	EventTimeout               = "htmx:timeout"
	EventValidationValidate    = "htmx:validation:validate"
	EventValidationFailed      = "htmx:validation:failed"
	EventValidationHalted      = "htmx:validation:halted"
	EventXHRAbort              = "htmx:xhr:abort"
	EventXHRLoadEnd            = "htmx:xhr:loadend"
	EventXHRLoadStart          = "htmx:xhr:loadstart"
	EventXHRProgress           = "htmx:xhr:progress"
)

// DOM events, for On and Trigger.
const (
	// Mouse
	EventClick       = "click"
	EventDblClick    = "dblclick"
	EventMouseDown   = "mousedown"
	EventMouseUp     = "mouseup"
	EventMouseOver   = "mouseover"
	EventMouseOut    = "mouseout"
	EventMouseEnter  = "mouseenter"
	EventMouseLeave  = "mouseleave"
	EventMouseMove   = "mousemove"
	EventContextMenu = "contextmenu"

	// Pointer
	EventPointerDown   = "pointerdown"
	EventPointerUp     = "pointerup"
	EventPointerMove   = "pointermove"
	EventPointerEnter  = "pointerenter"
	EventPointerLeave  = "pointerleave"
	EventPointerOver   = "pointerover"
	EventPointerOut    = "pointerout"
	EventPointerCancel = "pointercancel"

	// Touch
	EventTouchStart  = "touchstart"
	EventTouchMove   = "touchmove"
	EventTouchEnd    = "touchend"
	EventTouchCancel = "touchcancel"

	// Keyboard and focus
	EventKeyDown  = "keydown"
	EventKeyUp    = "keyup"
	EventKeyPress = "keypress"
	EventFocus    = "focus"
	EventBlur     = "blur"
	EventFocusIn  = "focusin"
	EventFocusOut = "focusout"

	// Forms
	EventInput       = "input"
	EventChange      = "change"
	EventBeforeInput = "beforeinput"
	EventInvalid     = "invalid"
	EventSubmit      = "submit"
	EventReset       = "reset"

	// Clipboard and drag and drop
	EventCopy      = "copy"
	EventCut       = "cut"
	EventPaste     = "paste"
	EventDragStart = "dragstart"
	EventDrag      = "drag"
	EventDragEnter = "dragenter"
	EventDragOver  = "dragover"
	EventDragLeave = "dragleave"
	EventDrop      = "drop"
	EventDragEnd   = "dragend"

	// Media and resources
	EventDOMLoad      = "load"
	EventError        = "error"
	EventPlay         = "play"
	EventPause        = "pause"
	EventVolumeChange = "volumechange"
	EventTimeUpdate   = "timeupdate"
	EventEnded        = "ended"
	EventSeeking      = "seeking"
	EventSeeked       = "seeked"
	EventWaiting      = "waiting"

	// Window and document
	EventVisibilityChange = "visibilitychange"
	EventScroll           = "scroll"
	EventResize           = "resize"
	EventBeforeUnload     = "beforeunload"
	EventUnload           = "unload"
)

var (
	lowerUpper = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	acronymEnd = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
)

// EventName converts a camel-case event name to the kebab-case form htmx
// expects in hx-on attributes: htmx:noSSESourceError becomes
// htmx:no-sse-source-error. Names already in kebab case are unchanged.
func EventName(event string) string {
	event = lowerUpper.ReplaceAllString(event, "${1}-${2}")
	event = acronymEnd.ReplaceAllString(event, "${1}-${2}")
	return strings.ToLower(event)
}

// On runs script when event fires on the element.
func On(event, script string) vdom.Attr {
	return attr("on:"+EventName(event), script)
}
