package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/hxattr/internal/errors"
)

const (
	// ConfigFileName is the name of the JSON configuration file.
	ConfigFileName = "hxattr.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 7331

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultHTMXURL is where the preview page loads htmx from.
	DefaultHTMXURL = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

	// DefaultWSExtensionURL is where the preview page loads the htmx ws
	// extension from.
	DefaultWSExtensionURL = "https://unpkg.com/htmx-ext-ws@2.0.2/ws.js"

	// DefaultShutdownTimeout bounds graceful shutdown of the preview server.
	DefaultShutdownTimeout = "5s"
)

// FileNames are the names Find looks for, in order.
var FileNames = []string{ConfigFileName, "hxattr.yaml", "hxattr.yml"}

// Config is the hxattr configuration. It only affects the CLI and the
// preview server; the hx package itself has no configuration.
type Config struct {
	Server    ServerConfig    `json:"server" yaml:"server"`
	HTMX      HTMXConfig      `json:"htmx" yaml:"htmx"`
	Metrics   MetricsConfig   `json:"metrics" yaml:"metrics"`
	Tracing   TracingConfig   `json:"tracing" yaml:"tracing"`
	WebSocket WebSocketConfig `json:"websocket" yaml:"websocket"`
	Log       LogConfig       `json:"log" yaml:"log"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig configures the preview server listener.
type ServerConfig struct {
	Host string `json:"host,omitempty" yaml:"host,omitempty"`
	Port int    `json:"port,omitempty" yaml:"port,omitempty"`

	// ShutdownTimeout is a Go duration such as "5s".
	ShutdownTimeout string `json:"shutdownTimeout,omitempty" yaml:"shutdownTimeout,omitempty"`
}

// HTMXConfig says where the preview page loads its scripts from.
type HTMXConfig struct {
	ScriptURL      string `json:"scriptURL,omitempty" yaml:"scriptURL,omitempty"`
	Integrity      string `json:"integrity,omitempty" yaml:"integrity,omitempty"`
	WSExtensionURL string `json:"wsExtensionURL,omitempty" yaml:"wsExtensionURL,omitempty"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Path      string `json:"path,omitempty" yaml:"path,omitempty"`
}

// TracingConfig configures OpenTelemetry spans for preview requests.
type TracingConfig struct {
	Enabled    bool   `json:"enabled" yaml:"enabled"`
	TracerName string `json:"tracerName,omitempty" yaml:"tracerName,omitempty"`
}

// WebSocketConfig configures the preview chat socket.
type WebSocketConfig struct {
	ReadBufferSize  int   `json:"readBufferSize,omitempty" yaml:"readBufferSize,omitempty"`
	WriteBufferSize int   `json:"writeBufferSize,omitempty" yaml:"writeBufferSize,omitempty"`
	MaxMessageSize  int64 `json:"maxMessageSize,omitempty" yaml:"maxMessageSize,omitempty"`

	// History is how many chat messages a new client receives.
	History int `json:"history,omitempty" yaml:"history,omitempty"`
}

// LogConfig configures slog output.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// New creates a Config with default values.
func New() *Config {
	cfg := &Config{
		Metrics: MetricsConfig{Enabled: true},
	}
	cfg.applyDefaults()
	return cfg
}

// Find returns the first config file from FileNames present in dir, or ""
// if there is none.
func Find(dir string) string {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// Load reads the config file in dir, or returns the defaults when dir has
// none.
func Load(dir string) (*Config, error) {
	path := Find(dir)
	if path == "" {
		return New(), nil
	}
	return LoadFile(path)
}

// LoadFile reads configuration from path. Files ending in .json may contain
// comments and trailing commas; .yaml and .yml files are read as YAML.
func LoadFile(path string) (*Config, error) {
	format := formatOf(path)
	if format == "" {
		return nil, errors.New(errors.ErrConfigFormat).
			WithDetail("Cannot tell the format of " + filepath.Base(path) + " from its extension.")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrConfigNotFound).
				WithDetail("No config file at " + path + ".").
				Wrap(err)
		}
		return nil, errors.New(errors.ErrConfigInvalid).Wrap(err)
	}

	cfg := New()
	if err := decode(data, format, cfg); err != nil {
		return nil, errors.New(errors.ErrConfigInvalid).
			WithDetail("Failed to parse " + filepath.Base(path) + ".").
			WithLocationFromError(path, err).
			Wrap(err)
	}

	cfg.configPath = path
	cfg.applyDefaults()
	return cfg, nil
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

func decode(data []byte, format string, cfg *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if format == "yaml" {
		return yaml.Unmarshal(data, cfg)
	}
	return json.Unmarshal(jsonc.ToJSON(data), cfg)
}

// Marshal encodes the config as "json" or "yaml".
func (c *Config) Marshal(format string) ([]byte, error) {
	switch format {
	case "yaml", "yml":
		return yaml.Marshal(c)
	case "json", "":
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, errors.New(errors.ErrConfigFormat).
			WithDetail("Unknown output format " + strconv.Quote(format) + ".")
	}
}

// SaveTo writes the configuration to path in the format its extension
// names.
func (c *Config) SaveTo(path string) error {
	format := formatOf(path)
	if format == "" {
		return errors.New(errors.ErrConfigFormat)
	}
	data, err := c.Marshal(format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New(errors.ErrConfigInvalid).Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if c.HTMX.ScriptURL == "" {
		c.HTMX.ScriptURL = DefaultHTMXURL
	}
	if c.HTMX.WSExtensionURL == "" {
		c.HTMX.WSExtensionURL = DefaultWSExtensionURL
	}

	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = "hxattr"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}

	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = "hxattr"
	}

	if c.WebSocket.ReadBufferSize == 0 {
		c.WebSocket.ReadBufferSize = 1024
	}
	if c.WebSocket.WriteBufferSize == 0 {
		c.WebSocket.WriteBufferSize = 1024
	}
	if c.WebSocket.MaxMessageSize == 0 {
		c.WebSocket.MaxMessageSize = 4096
	}
	if c.WebSocket.History == 0 {
		c.WebSocket.History = 20
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// reservedPaths are served by the preview server and cannot hold metrics.
var reservedPaths = map[string]bool{
	"/": true, "/clicked": true, "/search": true, "/items": true, "/ws": true, "/healthz": true,
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return errors.New(errors.ErrConfigPort).
			WithDetail("server.port is " + strconv.Itoa(c.Server.Port) + "; it must be between 1 and 65535.")
	}
	if _, err := time.ParseDuration(c.Server.ShutdownTimeout); err != nil {
		return errors.New(errors.ErrConfigDuration).Wrap(err)
	}
	if _, ok := parseLevel(c.Log.Level); !ok {
		return errors.New(errors.ErrConfigLogLevel).
			WithDetail("log.level is " + strconv.Quote(c.Log.Level) + "; use debug, info, warn or error.")
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New(errors.ErrConfigLogFormat)
	}
	if c.Metrics.Enabled && (!strings.HasPrefix(c.Metrics.Path, "/") || reservedPaths[c.Metrics.Path]) {
		return errors.New(errors.ErrConfigMetricsPath).
			WithDetail("metrics.path " + strconv.Quote(c.Metrics.Path) + " must start with a slash and must not be a preview route.")
	}
	if c.WebSocket.ReadBufferSize < 0 || c.WebSocket.WriteBufferSize < 0 || c.WebSocket.MaxMessageSize < 0 || c.WebSocket.History < 0 {
		return errors.New(errors.ErrConfigWebSocketSize)
	}
	return nil
}

// Address returns host:port for the preview server.
func (c *Config) Address() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// URL returns the preview server URL.
func (c *Config) URL() string {
	return "http://" + c.Address()
}

// ShutdownTimeout returns the parsed shutdown timeout, or the default when it
// does not parse.
func (c *Config) ShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil {
		d, _ = time.ParseDuration(DefaultShutdownTimeout)
	}
	return d
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// SlogLevel returns the configured log level, info if it is invalid.
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.Log.Level)
	return level
}
