package hx

// SwapStyle is how htmx swaps response content into the target.
type SwapStyle string

const (
	SwapInnerHTML   SwapStyle = "innerHTML"
	SwapOuterHTML   SwapStyle = "outerHTML"
	SwapTextContent SwapStyle = "textContent"
	SwapBeforeBegin SwapStyle = "beforebegin"
	SwapAfterBegin  SwapStyle = "afterbegin"
	SwapBeforeEnd   SwapStyle = "beforeend"
	SwapAfterEnd    SwapStyle = "afterend"
	SwapDelete      SwapStyle = "delete"
	SwapNone        SwapStyle = "none"
)

// ScrollPos is a scroll or show position.
type ScrollPos string

const (
	Top    ScrollPos = "top"
	Bottom ScrollPos = "bottom"
)

// SyncStrategy controls how hx-sync treats concurrent requests.
type SyncStrategy string

const (
	SyncDefault    SyncStrategy = ""
	SyncDrop       SyncStrategy = "drop"
	SyncAbort      SyncStrategy = "abort"
	SyncReplace    SyncStrategy = "replace"
	SyncQueue      SyncStrategy = "queue"
	SyncQueueFirst SyncStrategy = "queue first"
	SyncQueueLast  SyncStrategy = "queue last"
	SyncQueueAll   SyncStrategy = "queue all"
)

// QueueMode is the queue modifier of hx-trigger.
type QueueMode string

const (
	QueueFirst QueueMode = "first"
	QueueLast  QueueMode = "last"
	QueueAll   QueueMode = "all"
	QueueNone  QueueMode = "none"
)

// EncodingType is a request body encoding for hx-encoding.
type EncodingType string

const (
	EncodingURLEncoded EncodingType = "application/x-www-form-urlencoded"
	EncodingMultipart  EncodingType = "multipart/form-data"
)

// InheritedAttr names an attribute for hx-inherit and hx-disinherit.
type InheritedAttr string

const (
	InheritAll         InheritedAttr = "*"
	InheritBoost       InheritedAttr = "hx-boost"
	InheritConfirm     InheritedAttr = "hx-confirm"
	InheritDisabled    InheritedAttr = "hx-disabled"
	InheritEncoding    InheritedAttr = "hx-encoding"
	InheritHeaders     InheritedAttr = "hx-headers"
	InheritInclude     InheritedAttr = "hx-include"
	InheritIndicator   InheritedAttr = "hx-indicator"
	InheritParams      InheritedAttr = "hx-params"
	InheritPreserve    InheritedAttr = "hx-preserve"
	InheritPrompt      InheritedAttr = "hx-prompt"
	InheritPushURL     InheritedAttr = "hx-push-url"
	InheritReplaceURL  InheritedAttr = "hx-replace-url"
	InheritRequest     InheritedAttr = "hx-request"
	InheritSelect      InheritedAttr = "hx-select"
	InheritSelectOOB   InheritedAttr = "hx-select-oob"
	InheritSwap        InheritedAttr = "hx-swap"
	InheritSync        InheritedAttr = "hx-sync"
	InheritTarget      InheritedAttr = "hx-target"
	InheritVals        InheritedAttr = "hx-vals"
	InheritDisabledElt InheritedAttr = "hx-disabled-elt"
)

// Extended CSS selector keywords understood by hx-target, hx-include and
// friends.
const (
	This     = "this"
	NextEl   = "next"
	PrevEl   = "previous"
	Document = "document"
	Window   = "window"
	Body     = "body"
)

// Closest selects the closest ancestor (or self) matching sel.
func Closest(sel string) string { return "closest " + sel }

// Find selects the first descendant matching sel.
func Find(sel string) string { return "find " + sel }

// Next selects the next sibling matching sel.
func Next(sel string) string { return "next " + sel }

// Previous selects the previous sibling matching sel.
func Previous(sel string) string { return "previous " + sel }
