package http

import (
	"net/http"

	"github.com/MKhiriev/go-time-relay/internal/utils"
)

func (h *Handler) getServiceInfo(w http.ResponseWriter, r *http.Request) {
	serviceInfo := h.services.AppInfoService.GetServiceInfo(r.Context())

	utils.WriteJSON(w, serviceInfo, http.StatusOK)
}
