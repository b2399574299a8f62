package hx

import (
	"strconv"
	"strings"
	"time"

	"github.com/vango-dev/hxattr/pkg/vdom"
)

// Non-DOM events htmx understands in hx-trigger.
const (
	TriggerLoad      = "load"
	TriggerRevealed  = "revealed"
	TriggerIntersect = "intersect"
)

// triggerSpec holds the modifiers of one hx-trigger entry. They render in a
// fixed order regardless of the order the options were given.
type triggerSpec struct {
	filter    string
	once      bool
	changed   bool
	delay     *time.Duration
	throttle  *time.Duration
	from      string
	target    string
	consume   bool
	queue     QueueMode
	root      string
	threshold *float64
}

// TriggerOption adds a modifier to Trigger or TriggerEvery.
type TriggerOption func(*triggerSpec)

// Filter only fires the trigger when the JavaScript expression is true.
func Filter(expr string) TriggerOption {
	return func(s *triggerSpec) { s.filter = expr }
}

// Once fires the trigger a single time.
func Once() TriggerOption {
	return func(s *triggerSpec) { s.once = true }
}

// Changed fires only when the element's value changed.
func Changed() TriggerOption {
	return func(s *triggerSpec) { s.changed = true }
}

// Delay waits d before issuing the request. Each new event resets the wait.
func Delay(d time.Duration) TriggerOption {
	return func(s *triggerSpec) { s.delay = &d }
}

// Throttle drops events that arrive within d of the last request.
func Throttle(d time.Duration) TriggerOption {
	return func(s *triggerSpec) { s.throttle = &d }
}

// From listens for the event on the elements matching selector.
func From(selector string) TriggerOption {
	return func(s *triggerSpec) { s.from = selector }
}

// EventTarget only fires when the event target matches selector.
func EventTarget(selector string) TriggerOption {
	return func(s *triggerSpec) { s.target = selector }
}

// Consume stops the event from triggering requests on parent elements.
func Consume() TriggerOption {
	return func(s *triggerSpec) { s.consume = true }
}

// Queue sets which events are queued while a request is in flight.
func Queue(mode QueueMode) TriggerOption {
	return func(s *triggerSpec) { s.queue = mode }
}

// Root sets the intersection root of an intersect trigger.
func Root(selector string) TriggerOption {
	return func(s *triggerSpec) { s.root = selector }
}

// Threshold sets the intersection threshold of an intersect trigger.
func Threshold(f float64) TriggerOption {
	return func(s *triggerSpec) { s.threshold = &f }
}

func (s *triggerSpec) render(head string) string {
	parts := []string{head}
	if s.filter != "" {
		parts = append(parts, "["+s.filter+"]")
	}
	if s.once {
		parts = append(parts, "once")
	}
	if s.changed {
		parts = append(parts, "changed")
	}
	if s.delay != nil {
		parts = append(parts, "delay:"+ms(*s.delay))
	}
	if s.throttle != nil {
		parts = append(parts, "throttle:"+ms(*s.throttle))
	}
	if s.from != "" {
		parts = append(parts, "from:("+s.from+")")
	}
	if s.target != "" {
		parts = append(parts, "target:("+s.target+")")
	}
	if s.consume {
		parts = append(parts, "consume")
	}
	if s.queue != "" {
		parts = append(parts, "queue:"+string(s.queue))
	}
	if s.root != "" {
		parts = append(parts, "root:"+s.root)
	}
	if s.threshold != nil {
		parts = append(parts, "threshold:"+strconv.FormatFloat(*s.threshold, 'f', -1, 64))
	}
	return strings.Join(parts, " ")
}

func buildTrigger(head string, opts []TriggerOption) vdom.Attr {
	var spec triggerSpec
	for _, opt := range opts {
		opt(&spec)
	}
	return attr("trigger", spec.render(head))
}

// Trigger sets the event that issues the request. Several triggers on one
// element are joined into a single comma separated hx-trigger.
func Trigger(event string, opts ...TriggerOption) vdom.Attr {
	return buildTrigger(event, opts)
}

// TriggerEvery polls every d.
func TriggerEvery(d time.Duration, opts ...TriggerOption) vdom.Attr {
	return buildTrigger("every "+ms(d), opts)
}
