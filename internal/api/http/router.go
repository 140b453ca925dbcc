// Package httpapi exposes the QC engine over HTTP.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs the HTTP router for the service.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	// Basic middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(Recoverer)
	r.Use(RequestLogger)

	// Health endpoint
	r.Get("/healthz", h.Health)

	// API routes
	r.Route("/v1", func(r chi.Router) {
		r.Get("/info", h.Info)
		r.Post("/analyze", h.Analyze)
	})

	return r
}
