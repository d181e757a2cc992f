// Package server exposes label generation over HTTP.
//
// Routes:
//
//	POST /api/labels                          generate and store a label
//	GET  /api/labels/{labelID}                stored label metadata
//	GET  /api/labels/{labelID}/embed          inline HTML label
//	GET  /api/labels/{labelID}/download/{fmt} artifact download
//	GET  /healthz                             liveness probe
//
// Validation failures return 422 with a body naming the offending field.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/curadolabs/labelgen/pkg/pipeline"
)

// Server handles label generation HTTP traffic.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a Server around a pipeline runner.
// If logger is nil, the runner's logger is used.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = runner.Logger
	}
	s := &Server{runner: runner, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/labels", func(r chi.Router) {
		r.Post("/", s.handleGenerate)
		r.Route("/{labelID}", func(r chi.Router) {
			r.Get("/", s.handleMetadata)
			r.Get("/embed", s.handleEmbed)
			r.Get("/download/{format}", s.handleDownload)
		})
	})
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start))
	})
}
