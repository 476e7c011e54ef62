// Package httpapi serves the ASCII conversion over HTTP.
//
// # Endpoints
//
//	POST /api/ascii   convert an image (alias: POST /api/test)
//	GET  /healthz     liveness check
//
// The conversion request body is JSON:
//
//	{"image": "data:image/png;base64,....", "rows": "20", "cols": 40}
//
// rows and cols may be strings or numbers. A successful response is
//
//	{"ascii": "##..\n....", "rle": "2-2\n4"}
//
// and every failure is {"error": "<message>"}. Conversion failures share one
// generic message; the specific error code is logged and sent in the
// X-Error-Code response header.
//
// # Middleware
//
// Every request gets an X-Request-ID (a UUID, or the client's own header when
// present) that tags its log lines. Responses are gzip-compressed when the
// client accepts it, and panics are recovered into 500 responses.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/klauspost/compress/gzhttp"

	"github.com/ironsheep/image-ascii/internal/ascii"
	"github.com/ironsheep/image-ascii/internal/config"
)

const shutdownTimeout = 5 * time.Second

// Server is the HTTP front end of the converter.
type Server struct {
	cfg    config.Config
	conv   ascii.Config
	logger *log.Logger
	router chi.Router
}

// New creates a Server from validated settings.
func New(cfg config.Config, logger *log.Logger) (*Server, error) {
	conv, err := cfg.Conversion()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		cfg:    cfg,
		conv:   conv,
		logger: logger,
	}
	s.router = s.routes()
	return s, nil
}

// routes builds the chi router with middleware.
func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/api/ascii", s.handleConvert)
	r.Post("/api/test", s.handleConvert)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "", "Not found.")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "", "Method not allowed.")
	})
	return r
}

// Handler returns the root handler, including response compression.
func (s *Server) Handler() http.Handler {
	return gzhttp.GzipHandler(s.router)
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadTimeout:       s.cfg.ReadTimeout.Duration,
		ReadHeaderTimeout: s.cfg.ReadTimeout.Duration,
		WriteTimeout:      s.cfg.WriteTimeout.Duration,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("HTTP server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
