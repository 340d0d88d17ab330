package http

import (
	"net/http"

	"github.com/MKhiriev/go-time-relay/internal/logger"
	"github.com/MKhiriev/go-time-relay/internal/utils"
	"github.com/MKhiriev/go-time-relay/models"
)

func (h *Handler) getTime(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	requestID, _ := utils.GetRequestIDFromContext(ctx)
	timezone := r.URL.Query().Get(models.QueryParamTimezone)

	timeResponse, err := h.services.TimeService.CurrentTime(ctx, timezone, requestID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getTime").Msg("error getting current time")
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, timeResponse, http.StatusOK)
}
