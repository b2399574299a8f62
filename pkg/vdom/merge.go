package vdom

import (
	"log/slog"
	"sync"
)

// MergeFunc resolves a conflict between two same-named attributes on one
// element. prev is nil when the attribute has not been set yet.
//
// It returns the attribute that replaces prev and true, or false to leave the
// decision to the registry's default policy (next replaces prev).
type MergeFunc func(prev *Attr, next Attr) (Attr, bool)

// MergeRegistry holds the merge handlers consulted by element constructors.
// Handlers run in registration order; the first one that returns true wins.
type MergeRegistry struct {
	mu       sync.RWMutex
	names    []string
	handlers map[string]MergeFunc
	logger   *slog.Logger
}

// MergeHandle identifies an installed handler.
type MergeHandle struct {
	registry *MergeRegistry
	name     string
}

// DefaultMergers is the registry used by the package-level element
// constructors. It starts empty.
var DefaultMergers = NewMergeRegistry(nil)

// NewMergeRegistry creates an empty registry. A nil logger uses slog.Default.
func NewMergeRegistry(logger *slog.Logger) *MergeRegistry {
	if logger == nil {
		logger = slog.Default()
	}
	return &MergeRegistry{
		handlers: make(map[string]MergeFunc),
		logger:   logger.With("component", "vdom.merge"),
	}
}

// Register installs fn under name. Registering the same name again replaces
// the handler in place and keeps its position, so repeated registration never
// applies a handler twice.
func (r *MergeRegistry) Register(name string, fn MergeFunc) *MergeHandle {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[name]; exists {
		r.logger.Debug("merge handler replaced", "name", name)
	} else {
		r.names = append(r.names, name)
		r.logger.Debug("merge handler registered", "name", name)
	}
	r.handlers[name] = fn
	return &MergeHandle{registry: r, name: name}
}

// Name returns the name the handler was registered under.
func (h *MergeHandle) Name() string {
	return h.name
}

// Remove uninstalls the handler. It is safe to call more than once.
func (h *MergeHandle) Remove() {
	if h == nil || h.registry == nil {
		return
	}
	h.registry.unregister(h.name)
}

func (r *MergeRegistry) unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.handlers[name]; !ok {
		return
	}
	delete(r.handlers, name)
	for i, n := range r.names {
		if n == name {
			r.names = append(r.names[:i], r.names[i+1:]...)
			break
		}
	}
	r.logger.Debug("merge handler removed", "name", name)
}

// Registered reports whether a handler is installed under name.
func (r *MergeRegistry) Registered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.handlers[name]
	return ok
}

// Len returns the number of installed handlers.
func (r *MergeRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}

// Resolve returns the attribute that should be stored when next is supplied
// after prev. Without a handler claiming the pair, next wins.
func (r *MergeRegistry) Resolve(prev *Attr, next Attr) Attr {
	if r == nil {
		return next
	}

	r.mu.RLock()
	fns := make([]MergeFunc, 0, len(r.names))
	for _, name := range r.names {
		fns = append(fns, r.handlers[name])
	}
	r.mu.RUnlock()

	for _, fn := range fns {
		if merged, ok := fn(prev, next); ok {
			return merged
		}
	}
	return next
}
