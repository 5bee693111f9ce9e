package http

import (
	"net/http"

	"blogz/internal/utils"
)

// healthResponse is the deployment-probe payload.
type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, healthResponse{
		Status:  "ok",
		Version: h.version,
	}, http.StatusOK)
}
