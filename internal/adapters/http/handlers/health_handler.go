package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/kanban-engine/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/session"
	"github.com/jsamuelsen11/kanban-engine/internal/ports"
)

// sessionReader is the part of the session service the probes look at.
type sessionReader interface {
	CurrentSession() (session.Session, bool)
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
	sessions sessionReader
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(registry ports.HealthRegistry, sessions sessionReader) *HealthHandler {
	return &HealthHandler{registry: registry, sessions: sessions}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.HealthResponse{Status: dto.HealthOK})
}

// Readiness handles GET /health/ready. It reports the store (REST breaker
// state or SQLite ping) and, when enabled, the session relay; any failing
// check answers 503. Whether a session is active is reported but never
// affects readiness: a signed-out engine still serves sign-in.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp := dto.ToReadinessResponse(h.registry.CheckAll(r.Context()))

	resp.Session = dto.SessionNone
	if _, ok := h.sessions.CurrentSession(); ok {
		resp.Session = dto.SessionActive
	}

	code := http.StatusOK
	if resp.Status != dto.HealthReady {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, r, code, resp)
}
