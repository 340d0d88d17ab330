package http

import (
	"net/http"

	"github.com/MKhiriev/go-time-relay/internal/utils"
)

func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	healthStatus := h.services.AppInfoService.GetHealthStatus(r.Context())

	utils.WriteJSON(w, healthStatus, http.StatusOK)
}
