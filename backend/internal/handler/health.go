package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/itchan-dev/forum/shared/logger"
	"github.com/itchan-dev/forum/shared/utils"
)

const readinessTimeout = 2 * time.Second

type probeResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, probeResponse{Status: "ok"})
}

// Ready answers 503 until the database accepts a ping within readinessTimeout.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		logger.FromContext(r.Context()).Warn("readiness check failed", "error", err)
		utils.WriteJSON(w, http.StatusServiceUnavailable, probeResponse{Status: "unavailable", Reason: "database"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, probeResponse{Status: "ok"})
}
