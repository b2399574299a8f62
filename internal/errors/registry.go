package errors

import (
	"sort"
	"sync"
)

// ErrorTemplate defines a registered error code.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// Registered codes.
const (
	// Config (E100-E119)
	ErrConfigNotFound      = "E100"
	ErrConfigInvalid       = "E101"
	ErrConfigPort          = "E102"
	ErrConfigLogLevel      = "E103"
	ErrConfigFormat        = "E104"
	ErrConfigLogFormat     = "E105"
	ErrConfigMetricsPath   = "E106"
	ErrConfigWebSocketSize = "E107"
	ErrConfigDuration      = "E108"

	// CLI (E120-E139)
	ErrUnknownKey      = "E120"
	ErrMalformedPair   = "E121"
	ErrMissingArgs     = "E122"
	ErrInvalidDuration = "E123"
	ErrRender          = "E124"

	// Server (E140-E159)
	ErrListen        = "E140"
	ErrUpgrade       = "E141"
	ErrShutdown      = "E142"
	ErrInvalidItemID = "E143"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]ErrorTemplate{
		ErrConfigNotFound: {
			Category:   CategoryConfig,
			Message:    "Config file not found",
			Detail:     "The config file given with --config does not exist.",
			Suggestion: "Check the path, or omit --config to use the defaults.",
		},
		ErrConfigInvalid: {
			Category: CategoryConfig,
			Message:  "Invalid config file",
			Detail:   "The config file could not be parsed as JSON or YAML.",
		},
		ErrConfigPort: {
			Category:   CategoryConfig,
			Message:    "Invalid server port",
			Detail:     "server.port must be between 1 and 65535.",
			Suggestion: `Set "server": {"port": 8080}.`,
		},
		ErrConfigLogLevel: {
			Category:   CategoryConfig,
			Message:    "Invalid log level",
			Detail:     "log.level must be one of debug, info, warn, error.",
			Suggestion: `Set "log": {"level": "info"}.`,
		},
		ErrConfigFormat: {
			Category: CategoryConfig,
			Message:  "Unsupported config format",
			Detail:   "Config files must end in .json, .yaml or .yml.",
		},
		ErrConfigLogFormat: {
			Category:   CategoryConfig,
			Message:    "Invalid log format",
			Detail:     "log.format must be text or json.",
			Suggestion: `Set "log": {"format": "text"}.`,
		},
		ErrConfigMetricsPath: {
			Category:   CategoryConfig,
			Message:    "Invalid metrics path",
			Detail:     "metrics.path must start with a slash and must not collide with a preview route.",
			Suggestion: `Set "metrics": {"path": "/metrics"}.`,
		},
		ErrConfigWebSocketSize: {
			Category: CategoryConfig,
			Message:  "Invalid websocket buffer size",
			Detail:   "websocket read and write buffer sizes and the message limit must be positive.",
		},
		ErrConfigDuration: {
			Category:   CategoryConfig,
			Message:    "Invalid duration",
			Detail:     "Durations in the config use Go syntax.",
			Suggestion: `Set "server": {"shutdownTimeout": "5s"}.`,
		},

		ErrUnknownKey: {
			Category:   CategoryCLI,
			Message:    "Unknown attribute key",
			Detail:     "The key is neither an htmx builder nor a plain attribute name.",
			Suggestion: "Run 'hxattr render --help' for the list of keys.",
		},
		ErrMalformedPair: {
			Category:   CategoryCLI,
			Message:    "Malformed attribute argument",
			Detail:     "Attributes are given as key=value.",
			Suggestion: "Quote values that contain spaces: trigger='click delay:1s'.",
		},
		ErrMissingArgs: {
			Category: CategoryCLI,
			Message:  "Missing arguments",
		},
		ErrInvalidDuration: {
			Category:   CategoryCLI,
			Message:    "Invalid duration",
			Detail:     "Durations use Go syntax.",
			Suggestion: "Use values such as 500ms, 1s or 2m.",
		},
		ErrRender: {
			Category: CategoryCLI,
			Message:  "Render failed",
		},

		ErrListen: {
			Category:   CategoryServer,
			Message:    "Could not start the preview server",
			Suggestion: "Another process may be using the port. Try --port.",
		},
		ErrUpgrade: {
			Category: CategoryServer,
			Message:  "WebSocket upgrade failed",
		},
		ErrShutdown: {
			Category: CategoryServer,
			Message:  "Preview server did not shut down cleanly",
		},
		ErrInvalidItemID: {
			Category: CategoryServer,
			Message:  "Invalid item id",
		},
	}
)

// GetAllCodes returns every registered code, sorted.
func GetAllCodes() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for a code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	t, ok := registry[code]
	return t, ok
}

// Register adds or replaces a code.
func Register(code string, template ErrorTemplate) {
	registryMu.Lock()
	defer registryMu.Unlock()

	registry[code] = template
}
