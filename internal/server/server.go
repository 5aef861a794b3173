// Package server implements the qrcanvas HTTP rendering service.
//
// The service exposes three endpoints:
//   - GET /v1/qr: render a QR code and return the encoded image
//   - GET /v1/formats: list the encodable image formats
//   - GET /healthz: liveness probe
//
// Rendered output is cached by a hash of the full render request when a
// cache backend is configured; see [Config].
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pixelforge/qrcanvas/pkg/cache"
	"github.com/pixelforge/qrcanvas/pkg/canvas"
	qerrors "github.com/pixelforge/qrcanvas/pkg/errors"
)

// Server renders QR codes over HTTP.
type Server struct {
	cfg    Config
	logger *log.Logger
	store  cache.Cache
}

// New creates a Server. A nil store disables caching.
func New(cfg Config, logger *log.Logger, store cache.Cache) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if store == nil {
		store = cache.NewNullCache()
	}
	return &Server{cfg: cfg, logger: logger, store: store}
}

// Router builds the HTTP handler with all routes and middleware attached.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/v1/formats", s.handleFormats)
	r.Get("/v1/qr", s.handleRender)
	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Infof("Listening on %s", s.cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		s.logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.shutdownTimeout())
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleFormats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string][]string{"formats": canvas.Formats()})
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// writeError maps a coded error to an HTTP status and JSON body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch qerrors.GetCode(err) {
	case qerrors.ErrCodeInvalidInput, qerrors.ErrCodeInvalidDimensions,
		qerrors.ErrCodeInvalidFormat, qerrors.ErrCodeInvalidColor:
		status = http.StatusBadRequest
	case qerrors.ErrCodeUnsupportedFormat:
		status = http.StatusUnsupportedMediaType
	case qerrors.ErrCodeNotFound:
		status = http.StatusNotFound
	}

	var resp errorResponse
	resp.Error.Code = string(qerrors.GetCode(err))
	if resp.Error.Code == "" {
		resp.Error.Code = string(qerrors.ErrCodeInternal)
	}
	resp.Error.Message = qerrors.UserMessage(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
