package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// withMetrics records one observation per request: method, matched route
// pattern, final status code, and wall-clock duration.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		path := r.URL.Path
		if routeContext := chi.RouteContext(r.Context()); routeContext != nil && routeContext.RoutePattern() != "" {
			path = routeContext.RoutePattern()
		}

		status := lw.status
		if status == 0 {
			// handler returned without writing anything, net/http will send 200
			status = http.StatusOK
		}

		h.metrics.RecordRequest(r.Method, path, status, time.Since(start))
	})
}
