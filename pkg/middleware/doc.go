// Package middleware provides net/http middleware for the hxattr preview
// server.
//
//   - Prometheus counts and times requests, labelled by chi route pattern,
//     and exposes Record* helpers for fragment and websocket metrics
//   - OpenTelemetry wraps each request in a server span annotated with the
//     htmx request headers
//   - Logger writes one slog line per request
//
// All three are plain func(http.Handler) http.Handler values and work with
// chi's Use:
//
//	r := chi.NewRouter()
//	r.Use(chimw.RequestID)
//	r.Use(middleware.Logger(logger))
//	r.Use(middleware.OpenTelemetry())
//	r.Use(middleware.Prometheus(middleware.WithRegistry(reg)))
package middleware
