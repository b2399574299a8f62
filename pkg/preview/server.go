package preview

import (
	"bytes"
	"context"
	stderrors "errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/vango-dev/hxattr/hx"
	"github.com/vango-dev/hxattr/internal/config"
	"github.com/vango-dev/hxattr/internal/errors"
	"github.com/vango-dev/hxattr/pkg/middleware"
	"github.com/vango-dev/hxattr/pkg/render"
	"github.com/vango-dev/hxattr/pkg/vdom"
)

// Server is the preview server: a demo page whose markup is built with the
// hx builders, plus the fragment routes and chat socket the page talks to.
type Server struct {
	config   *config.Config
	logger   *slog.Logger
	mergers  *vdom.MergeRegistry
	renderer *render.Renderer
	items    *itemStore
	hub      *hub
	upgrader websocket.Upgrader
	router   chi.Router

	metrics        *prometheus.Registry
	tracerProvider trace.TracerProvider

	httpServer *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetricsRegistry sets the registry served on the metrics path.
// Default: a new registry with the Go and process collectors.
func WithMetricsRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.metrics = reg
	}
}

// WithTracerProvider sets the tracer provider used when tracing is enabled.
// Default: the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Server) {
		s.tracerProvider = tp
	}
}

// New creates a preview server. A nil cfg uses config.New().
func New(cfg *config.Config, opts ...Option) *Server {
	if cfg == nil {
		cfg = config.New()
	}

	s := &Server{
		config:   cfg,
		renderer: render.NewRenderer(render.RendererConfig{}),
		items:    &itemStore{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("component", "preview")

	if s.metrics == nil {
		s.metrics = prometheus.NewRegistry()
		s.metrics.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	// The page is built against a private registry so the preview never
	// touches vdom.DefaultMergers.
	s.mergers = vdom.NewMergeRegistry(s.logger)
	s.mergers.Register(hx.HandlerName, countMerges(hx.Merge))

	s.hub = newHub(cfg.WebSocket.History, s.logger)
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  cfg.WebSocket.ReadBufferSize,
		WriteBufferSize: cfg.WebSocket.WriteBufferSize,
	}
	s.router = s.routes()
	return s
}

// countMerges wraps a merge handler so every join it performs is counted.
func countMerges(fn vdom.MergeFunc) vdom.MergeFunc {
	return func(prev *vdom.Attr, next vdom.Attr) (vdom.Attr, bool) {
		merged, ok := fn(prev, next)
		if ok {
			middleware.RecordMerge(next.Key)
		}
		return merged, ok
	}
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logger(s.logger))

	if s.config.Tracing.Enabled {
		opts := []middleware.OTelOption{middleware.WithTracerName(s.config.Tracing.TracerName)}
		if s.tracerProvider != nil {
			opts = append(opts, middleware.WithTracerProvider(s.tracerProvider))
		}
		r.Use(middleware.OpenTelemetry(opts...))
	}
	if s.config.Metrics.Enabled {
		r.Use(middleware.Prometheus(
			middleware.WithNamespace(s.config.Metrics.Namespace),
			middleware.WithRegistry(s.metrics),
		))
		r.Method(http.MethodGet, s.config.Metrics.Path, promhttp.HandlerFor(s.metrics, promhttp.HandlerOpts{}))
	}

	r.Get("/", s.handleIndex)
	r.Get("/clicked", s.handleClicked)
	r.Get("/search", s.handleSearch)
	r.Post("/items", s.handleAddItem)
	r.Delete("/items/{id}", s.handleDeleteItem)
	r.Get("/ws", s.handleWebSocket)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	return r
}

// Handler returns the server's router. Chat sockets opened while Serve or
// Run is not running are closed with a try-again-later close frame.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address())
	if err != nil {
		return errors.New(errors.ErrListen).
			WithDetail("Could not listen on " + s.config.Address() + ".").
			Wrap(err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down within the
// configured timeout. It returns nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.hub.run(gctx)
	})

	g.Go(func() error {
		s.logger.Info("preview server starting", "address", ln.Addr().String())
		if err := s.httpServer.Serve(ln); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return errors.New(errors.ErrListen).Wrap(err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		return s.shutdown()
	})

	return g.Wait()
}

func (s *Server) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout())
	defer cancel()

	s.logger.Info("shutting down...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("shutdown error", "error", err)
		return errors.New(errors.ErrShutdown).Wrap(err)
	}
	s.logger.Info("preview server shutdown complete")
	return nil
}

// el builds an element with htmx attribute merging enabled.
func (s *Server) el(tag string, args ...any) *vdom.VNode {
	return vdom.NewElement(tag, s.mergers, args...)
}

// writeFragment renders nodes as an HTML fragment response.
func (s *Server) writeFragment(w http.ResponseWriter, name string, nodes ...*vdom.VNode) {
	var buf bytes.Buffer
	for _, node := range nodes {
		if err := s.renderer.RenderToWriter(&buf, node); err != nil {
			s.logger.Error("fragment render failed", "fragment", name, "error", err)
			http.Error(w, "render failed", http.StatusInternalServerError)
			return
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
	middleware.RecordFragment(name)
}
