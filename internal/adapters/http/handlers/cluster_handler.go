package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/replset-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/replset-api/internal/ports"
)

// ClusterHandler serves the replica set health report and the database
// info snapshot.
type ClusterHandler struct {
	health ports.HealthReporter
	info   ports.InfoReporter
}

// NewClusterHandler creates a ClusterHandler.
func NewClusterHandler(health ports.HealthReporter, info ports.InfoReporter) *ClusterHandler {
	return &ClusterHandler{health: health, info: info}
}

// Health handles GET /health. Any health failure is a 500 with the
// structured error body.
func (h *ClusterHandler) Health(w http.ResponseWriter, r *http.Request) {
	report, err := h.health.CheckHealth(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToHealthResponse(report))
}

// Info handles GET /.
func (h *ClusterHandler) Info(w http.ResponseWriter, r *http.Request) {
	info, err := h.info.Snapshot(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToInfoResponse(info))
}
