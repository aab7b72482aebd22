package docsite

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/treeline-ui/treeline/internal/livereload"
	"github.com/treeline-ui/treeline/pkg/html"
	"github.com/treeline-ui/treeline/pkg/middleware"
)

// ServerOptions configures the docs server.
type ServerOptions struct {
	// LiveReload enables the reload endpoint and client script.
	LiveReload bool

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Metrics is the Prometheus registry to serve and record into.
	// Defaults to the global registry.
	Metrics *prometheus.Registry
}

// Server serves the documentation site over HTTP.
type Server struct {
	site   *Site
	logger *slog.Logger
	reload *livereload.Server

	registry   *prometheus.Registry
	httpServer *http.Server
}

// NewServer creates a docs server over a loaded Site.
func NewServer(site *Site, opts ServerOptions) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		site:     site,
		logger:   logger,
		registry: opts.Metrics,
	}
	if opts.LiveReload {
		s.reload = livereload.NewServer(logger)
	}
	return s
}

// Reload returns the live reload server, or nil when disabled.
func (s *Server) Reload() *livereload.Server {
	return s.reload
}

// Handler builds the HTTP handler tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	metricsHandler := promhttp.Handler()
	if s.registry != nil {
		registerer = s.registry
		metricsHandler = promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
	}
	r.Use(middleware.Prometheus(
		middleware.WithRegistry(registerer),
		middleware.WithSubsystem("docs"),
	))
	r.Use(middleware.OTel(
		middleware.WithTracerName("treeline-docs"),
		middleware.WithFilter(func(req *http.Request) bool {
			return req.URL.Path != "/healthz" && req.URL.Path != "/metrics"
		}),
	))

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metricsHandler)

	if static := s.site.Config().Paths.Static; static != "" {
		fileServer := http.StripPrefix("/static/", http.FileServer(http.Dir(static)))
		r.Handle("/static/*", fileServer)
	}

	if s.reload != nil {
		r.Get(livereload.Path, s.reload.HandleWebSocket)
	}

	r.Get("/*", s.handlePage)
	return r
}

// handlePage serves a documentation page, or the not-found page.
func (s *Server) handlePage(w http.ResponseWriter, req *http.Request) {
	page, ok := s.site.Page(req.URL.Path)
	if !ok {
		s.renderNotFound(w, req)
		return
	}

	out, err := s.site.RenderHTML(page, s.reload != nil)
	if err != nil {
		s.logger.Error("render failed", "path", req.URL.Path, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(out))
}

// renderNotFound serves the 404 page with the full layout so the
// navigation stays usable.
func (s *Server) renderNotFound(w http.ResponseWriter, req *http.Request) {
	notFound := &Page{
		Path:  req.URL.Path,
		Title: "Page not found",
		Body:  html.Render(html.P(html.Text("The page you are looking for does not exist."))),
	}

	out, err := s.site.RenderHTML(notFound, s.reload != nil)
	if err != nil {
		http.NotFound(w, req)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(out))
}

// Start runs the server until the context is cancelled, then shuts
// down gracefully.
func (s *Server) Start(ctx context.Context) error {
	addr := s.site.Config().Server.Addr()
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("docs server listening", "addr", addr)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
