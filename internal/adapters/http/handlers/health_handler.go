package handlers

import (
	"net/http"
	"time"

	"github.com/jsamuelsen11/replset-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/replset-api/internal/ports"
)

// HealthHandler serves the process probes. Unlike GET /health it never
// queries replica-set status; readiness only consults the registered
// checkers (connection state and store circuit breaker).
type HealthHandler struct {
	registry ports.HealthRegistry
	now      func() time.Time
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry, now: time.Now}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.ProbeResponse{
		Status:    dto.ProbeOK,
		Timestamp: dto.FormatTime(h.now()),
	})
}

// Readiness handles GET /health/ready. Returns 200 if all checks pass,
// 503 if any check fails.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp, ready := dto.ToReadinessResponse(h.registry.CheckAll(r.Context()), h.now())

	code := http.StatusOK
	if !ready {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}
