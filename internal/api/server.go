// Package api serves the seating engine over HTTP.
//
// Every endpoint is stateless: the client sends the chart it holds and gets
// back seats, a rendering, an insertion or a selection. The server never
// stores charts.
//
//	GET  /healthz         liveness and build info
//	GET  /v1/palette      palette items
//	POST /v1/seats        seat coordinates for one table
//	POST /v1/render       chart → svg, json or txt
//	POST /v1/drop         drop a palette item onto a chart
//	POST /v1/select       rubber-band query over a chart
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/seatplan/pkg/palette"
	"github.com/matzehuels/seatplan/pkg/pipeline"
)

// maxBodyBytes bounds request bodies. Large venues stay well below it.
const maxBodyBytes = 8 << 20

// Server holds the dependencies shared by all handlers.
type Server struct {
	runner   *pipeline.Runner
	palette  []palette.Item
	defaults pipeline.Options
	logger   *log.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithPalette replaces the built-in palette.
func WithPalette(items []palette.Item) Option {
	return func(s *Server) {
		if len(items) > 0 {
			s.palette = items
		}
	}
}

// WithRenderDefaults sets the render options used when a request does not
// override them.
func WithRenderDefaults(opts pipeline.Options) Option {
	return func(s *Server) { s.defaults = opts }
}

// New creates a server. A nil runner renders without caching; a nil logger
// uses log.Default().
func New(runner *pipeline.Runner, logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	s := &Server{
		runner:  runner,
		palette: palette.Default(),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the chi router with all routes and middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/palette", s.handlePalette)
		r.Post("/seats", s.handleSeats)
		r.Post("/render", s.handleRender)
		r.Post("/drop", s.handleDrop)
		r.Post("/select", s.handleSelect)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, notFound(r.URL.Path))
	})
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
// within shutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "timeout", shutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
