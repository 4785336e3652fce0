// Package server serves the tools directory over HTTP.
//
// The REST surface lives under /api: the catalog endpoints, demo videos,
// stateless chart renders (chart.svg, chart.json) and a websocket stream
// (chart/stream) that drives a live engine and pushes frames while a
// transition runs. /healthz reports build info and /metrics exposes the
// Prometheus registry when metrics are enabled.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/toolverse/internal/config"
	"github.com/matzehuels/toolverse/pkg/observability"
	"github.com/matzehuels/toolverse/pkg/pipeline"
)

// Server is the toolverse HTTP server.
type Server struct {
	cfg        *config.Config
	runner     *pipeline.Runner
	logger     *log.Logger
	registry   *prometheus.Registry
	router     chi.Router
	httpServer *http.Server

	// frameInterval is the stream tick period.
	frameInterval time.Duration
}

// New creates a server. When cfg.Metrics is set, a fresh Prometheus
// registry is created and installed as the observability hooks.
func New(cfg *config.Config, runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		cfg:           cfg,
		runner:        runner,
		logger:        logger,
		frameInterval: time.Second / 60,
	}
	if cfg.Metrics {
		s.registry = prometheus.NewRegistry()
		s.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		observability.NewPrometheus(s.registry).Install()
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	corsOpts := cors.Options{
		AllowedOrigins: s.cfg.CORS.Origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.CORS.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", s.handleHealth)
	if s.registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))
			r.Get("/categories", s.handleCategories)
			r.Get("/categories/{id}", s.handleCategory)
			r.Get("/categories/{id}/tools", s.handleCategoryTools)
			r.Get("/tool/{id}", s.handleTool)
			r.Get("/search", s.handleSearch)
			r.Get("/sunburst-data", s.handleSunburstData)
			r.Get("/videos/{name}", s.handleVideo)
			r.Get("/chart.svg", s.handleChart(pipeline.FormatSVG))
			r.Get("/chart.json", s.handleChart(pipeline.FormatJSON))
		})
		r.Get("/chart/stream", s.handleStream)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "Not found"})
	})
	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on cfg.Addr until Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	s.logger.Info("listening", "addr", s.cfg.Addr, "catalog", s.cfg.Catalog, "cache", s.cfg.Cache.Backend)
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
