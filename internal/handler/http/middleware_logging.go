package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-time-relay/internal/logger"
)

// withLogging emits one structured entry per served request with the uri,
// method, status, duration and response size. The entry is written through
// the request's context logger, so it already carries the request_id field
// attached by withRequestID and the correlation survives into the access log.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		uri := r.RequestURI
		method := r.Method

		recorder := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(recorder, r)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", recorder.status).
			Dur("duration", time.Since(start)).
			Int("size", recorder.size).
			Send()
	})
}
