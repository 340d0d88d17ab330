package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-time-relay/internal/utils"
	"github.com/MKhiriev/go-time-relay/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// withRequestID attaches a correlation id to every request. An id supplied in
// the X-Request-Id header wins over one in the request_id query parameter;
// when neither is present a fresh UUID is minted. The id is stored in the
// request context, stamped on the request-scoped logger, and echoed in the
// response header.
func (h *Handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var requestID string
		if requestIDFromHeader := r.Header.Get(models.HeaderRequestID); requestIDFromHeader != "" {
			requestID = requestIDFromHeader
		} else if requestIDFromQuery := r.URL.Query().Get(models.QueryParamRequestID); requestIDFromQuery != "" {
			requestID = requestIDFromQuery
		} else {
			requestID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})

		ctx = context.WithValue(ctx, utils.RequestIDCtxKey, requestID)
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(models.HeaderRequestID, requestID)
		next.ServeHTTP(w, r)
	})
}
