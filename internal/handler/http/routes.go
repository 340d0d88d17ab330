package http

import (
	"net/http"

	"github.com/MKhiriev/go-time-relay/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", models.HeaderRequestID},
		ExposedHeaders: []string{models.HeaderRequestID},
	}))
	router.Use(h.withRequestID)
	router.Use(h.withLogging)

	// service endpoints share the request metrics and response compression;
	// the exposition endpoint stays outside so scrapes do not count themselves
	router.Group(func(r chi.Router) {
		r.Use(h.withMetrics)
		r.Use(withGZip)

		r.Get("/", h.getServiceInfo)
		r.Get("/health", h.getHealth)
		r.Get("/time", h.getTime)
	})

	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
