package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-time-relay/internal/adapter"
	"github.com/MKhiriev/go-time-relay/internal/logger"
	"github.com/MKhiriev/go-time-relay/internal/utils"
	"github.com/MKhiriev/go-time-relay/models"
)

var errorStatusMap = map[error]int{
	adapter.ErrResolverUnavailable: http.StatusServiceUnavailable,
	adapter.ErrResolverFailed:      http.StatusBadGateway,
	adapter.ErrInvalidResponse:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessage returns the stable client-facing text for err: the sentinel it
// matches rather than the whole wrapped chain, so resolver response bodies
// stay out of client-visible errors. The full chain goes to the logs instead.
func errorMessage(err error) string {
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return "internal server error"
}

// respondError writes the JSON error document for a failed time request,
// carrying the correlation id and the instant of the failure. A failed
// request produces only this document, never partial time data.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	requestID, _ := utils.GetRequestIDFromContext(r.Context())

	errorResponse := models.ErrorResponse{
		Error:     errorMessage(err),
		RequestID: requestID,
		Timestamp: models.FormatTimestamp(time.Now().UTC()),
	}

	if _, writeErr := utils.WriteJSON(w, errorResponse, statusFromError(err)); writeErr != nil {
		logger.FromRequest(r).Err(writeErr).Str("func", "*Handler.respondError").Msg("error writing error response")
	}
}
