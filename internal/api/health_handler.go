package api

import (
	"net/http"
	"time"

	"github.com/quietpage/stacks-api/internal/api/shared"
)

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	startedAt time.Time
}

// NewHealthHandler creates a HealthHandler anchored at the given start time.
func NewHealthHandler(startedAt time.Time) *HealthHandler {
	return &HealthHandler{startedAt: startedAt}
}

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	shared.RespondWithJSON(w, r, http.StatusOK, "OK", HealthResponse{
		Status:    "up",
		Uptime:    now.Sub(h.startedAt).Round(time.Second).String(),
		Timestamp: now.Format(time.RFC3339),
	})
}
