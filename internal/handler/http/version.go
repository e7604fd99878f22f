package http

import (
	"net/http"

	"github.com/peoplescope/peoplescope/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	utils.WriteJSON(w, map[string]string{"version": serverVersion}, http.StatusOK)
}
