package toast

import (
	"encoding/json"
	"net/http"

	"github.com/vango-dev/hxattr/hx"
)

// EventName is the event htmx dispatches for a toast. Listen for it with
// hx.On(toast.EventName, ...) on any ancestor of the requesting element.
const EventName = "hxattr:toast"

// Header is the response header htmx reads events from.
const Header = "HX-Trigger"

// Type represents the toast notification type.
type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
)

// Show asks the client to display a toast once the response is processed.
// It must be called before the response body is written.
//
// The client receives a CustomEvent with:
//   - event.type = "hxattr:toast"
//   - event.detail = { level: "success|error|warning|info", message: "..." }
func Show(w http.ResponseWriter, level Type, message string) {
	Custom(w, hx.Values{
		{Key: "level", Value: string(level)},
		{Key: "message", Value: message},
	})
}

// Success shows a success toast.
//
//	toast.Success(w, "Changes saved!")
func Success(w http.ResponseWriter, message string) {
	Show(w, TypeSuccess, message)
}

// Error shows an error toast.
func Error(w http.ResponseWriter, message string) {
	Show(w, TypeError, message)
}

// Warning shows a warning toast.
func Warning(w http.ResponseWriter, message string) {
	Show(w, TypeWarning, message)
}

// Info shows an info toast.
func Info(w http.ResponseWriter, message string) {
	Show(w, TypeInfo, message)
}

// WithTitle shows a toast with a title and message.
//
//	toast.WithTitle(w, toast.TypeSuccess, "Settings", "Your changes have been saved.")
func WithTitle(w http.ResponseWriter, level Type, title, message string) {
	Custom(w, hx.Values{
		{Key: "level", Value: string(level)},
		{Key: "title", Value: title},
		{Key: "message", Value: message},
	})
}

// Custom sends detail as the toast event payload. A later call replaces the
// toast set by an earlier one in the same response.
func Custom(w http.ResponseWriter, detail any) {
	data, err := json.Marshal(hx.Values{{Key: EventName, Value: detail}})
	if err != nil {
		return
	}
	w.Header().Set(Header, string(data))
}
