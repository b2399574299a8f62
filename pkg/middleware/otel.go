package middleware

import (
	"fmt"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name.
const defaultTracerName = "hxattr"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "hxattr").
	TracerName string

	// TracerProvider supplies the tracer. Default: the global provider.
	TracerProvider trace.TracerProvider

	// IncludeHTMXHeaders records the htmx request headers (HX-Trigger,
	// HX-Target, HX-Current-URL) as span attributes. Enabled by default.
	IncludeHTMXHeaders bool

	// Filter determines which requests to trace.
	// Return true to trace the request, false to skip.
	// If nil, all requests are traced.
	Filter func(r *http.Request) bool

	// AttributeExtractor extracts custom attributes from the request.
	AttributeExtractor func(r *http.Request) []attribute.KeyValue
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) OTelOption {
	return func(c *OTelConfig) {
		c.TracerProvider = tp
	}
}

// WithHTMXHeaders enables/disables recording htmx request headers.
func WithHTMXHeaders(include bool) OTelOption {
	return func(c *OTelConfig) {
		c.IncludeHTMXHeaders = include
	}
}

// WithRequestFilter sets a filter function for requests.
func WithRequestFilter(filter func(r *http.Request) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(r *http.Request) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

func defaultOTelConfig() OTelConfig {
	return OTelConfig{
		TracerName:         defaultTracerName,
		IncludeHTMXHeaders: true,
	}
}

// OpenTelemetry returns middleware that wraps every request in a server span.
//
// The span is named after the method and chi route pattern once routing is
// done, carries the htmx request headers, and is marked as an error for 5xx
// responses. Handlers reach it with trace.SpanFromContext(r.Context()).
//
// The tracer comes from the global provider unless WithTracerProvider is
// given. Configure it before starting the server:
//
//	otel.SetTracerProvider(tp)
//	r.Use(middleware.OpenTelemetry(middleware.WithTracerName("preview")))
func OpenTelemetry(opts ...OTelOption) func(http.Handler) http.Handler {
	config := defaultOTelConfig()
	for _, opt := range opts {
		opt(&config)
	}

	provider := config.TracerProvider
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	tracer := provider.Tracer(config.TracerName)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if config.Filter != nil && !config.Filter(r) {
				next.ServeHTTP(w, r)
				return
			}

			attrs := []attribute.KeyValue{
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
				attribute.Bool("htmx.request", r.Header.Get("HX-Request") == "true"),
			}
			if config.IncludeHTMXHeaders {
				attrs = append(attrs, htmxAttributes(r)...)
			}
			if config.AttributeExtractor != nil {
				attrs = append(attrs, config.AttributeExtractor(r)...)
			}

			ctx, span := tracer.Start(
				r.Context(),
				fmt.Sprintf("%s %s", r.Method, r.URL.Path),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(attrs...),
			)
			defer span.End()

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			if route := routePattern(r); route != "unmatched" {
				span.SetName(r.Method + " " + route)
				span.SetAttributes(attribute.String("http.route", route))
			}
			span.SetAttributes(attribute.Int("http.status_code", status))
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			} else {
				span.SetStatus(codes.Ok, "")
			}
		})
	}
}

// htmxHeaders maps htmx request headers to span attribute keys.
var htmxHeaders = []struct {
	header string
	key    string
}{
	{"HX-Trigger", "htmx.trigger"},
	{"HX-Trigger-Name", "htmx.trigger_name"},
	{"HX-Target", "htmx.target"},
	{"HX-Current-URL", "htmx.current_url"},
	{"HX-Boosted", "htmx.boosted"},
}

// htmxAttributes returns the htmx request headers that are present.
func htmxAttributes(r *http.Request) []attribute.KeyValue {
	var attrs []attribute.KeyValue
	for _, h := range htmxHeaders {
		if v := r.Header.Get(h.header); v != "" {
			attrs = append(attrs, attribute.String(h.key, v))
		}
	}
	return attrs
}
