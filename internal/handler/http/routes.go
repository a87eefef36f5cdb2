package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-backup-keeper/internal/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withMetrics)

	router.Get("/api/version/", h.getServerVersion)
	router.Method("GET", "/metrics", metrics.Handler())

	router.Route("/api/backups", func(r chi.Router) {
		r.Use(h.withRateLimit)

		r.With(h.withBodyLimit, h.withIntegrityCheck).Put("/{storageKey}", h.uploadBackup)
		r.Get("/{storageKey}", h.downloadBackup)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
