package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/kanban-engine/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-engine/internal/domain"
	"github.com/jsamuelsen11/kanban-engine/internal/ports"
)

// SessionHandler hands identities to the engine.
type SessionHandler struct {
	sessions ports.SessionService
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(sessions ports.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// SignIn handles PUT /api/v1/session.
func (h *SessionHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req dto.SignInRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	s, err := h.sessions.SignIn(r.Context(), req.AccessToken)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToSessionResponse(s))
}

// Refresh handles POST /api/v1/session/refresh.
func (h *SessionHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req dto.SignInRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	s, err := h.sessions.Refresh(r.Context(), req.AccessToken)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToSessionResponse(s))
}

// Current handles GET /api/v1/session.
func (h *SessionHandler) Current(w http.ResponseWriter, r *http.Request) {
	s, ok := h.sessions.CurrentSession()
	if !ok {
		dto.WriteErrorResponse(w, r, domain.ErrNoSession)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToSessionResponse(s))
}

// SignOut handles DELETE /api/v1/session.
func (h *SessionHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SignOut(r.Context()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
