// Package api serves the tank calculators over HTTP as JSON endpoints.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gotank/internal/logging"
	"github.com/alexiusacademia/gotank/internal/material"
)

// ShutdownTimeout bounds the graceful shutdown of Serve
const ShutdownTimeout = 5 * time.Second

// Handler serves the calculator endpoints from one material catalog
type Handler struct {
	catalog *material.Catalog
}

// NewHandler returns a handler using cat for material lookups
func NewHandler(cat *material.Catalog) *Handler {
	return &Handler{catalog: cat}
}

// NewRouter registers every endpoint under /api and wraps the router with
// request logging, CORS and, when limiter is not nil, per-client rate limiting
func NewRouter(h *Handler, limiter *IPRateLimiter) http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/calculate-capacity", h.Capacity).Methods("POST")
	api.HandleFunc("/calculate-shell", h.Shell).Methods("POST")
	api.HandleFunc("/calculate-wind", h.Wind).Methods("POST")
	api.HandleFunc("/calculate-seismic", h.Seismic).Methods("POST")
	api.HandleFunc("/calculate-access", h.Access).Methods("POST")
	api.HandleFunc("/recommend-material", h.RecommendMaterial).Methods("POST")
	api.HandleFunc("/materials", h.Materials).Methods("GET")
	api.HandleFunc("/calculate-roof", h.Roof).Methods("POST")
	api.HandleFunc("/calculate-bottom", h.Bottom).Methods("POST")
	api.HandleFunc("/calculate-annular", h.Annular).Methods("POST")
	api.HandleFunc("/calculate-anchors", h.Anchors).Methods("POST")
	api.HandleFunc("/nozzles/select", h.NozzleSelect).Methods("POST")
	api.HandleFunc("/nozzles/annexP", h.NozzleAnnexP).Methods("POST")

	var handler http.Handler = r
	if limiter != nil {
		handler = limiter.LimitMiddleware(handler)
	}
	return RequestLogger(CORS(handler))
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info("server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
