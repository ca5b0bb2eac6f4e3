package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/kanban-engine/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-engine/internal/ports"
)

// FailureHandler hands rolled back writes to the rendering layer.
type FailureHandler struct {
	feed ports.FailureFeed
}

// NewFailureHandler creates a FailureHandler.
func NewFailureHandler(feed ports.FailureFeed) *FailureHandler {
	return &FailureHandler{feed: feed}
}

// ListFailures handles GET /api/v1/failures. Each failure is returned once.
func (h *FailureHandler) ListFailures(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ToFailureListResponse(h.feed.Drain()))
}
