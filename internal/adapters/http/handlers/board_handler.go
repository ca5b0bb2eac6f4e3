package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/kanban-engine/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-engine/internal/platform/logging"
	"github.com/jsamuelsen11/kanban-engine/internal/ports"
)

// BoardHandler serves the workflow and the board list.
type BoardHandler struct {
	engine ports.BoardService
}

// NewBoardHandler creates a BoardHandler.
func NewBoardHandler(engine ports.BoardService) *BoardHandler {
	return &BoardHandler{engine: engine}
}

// Workflow handles GET /api/v1/workflow.
func (h *BoardHandler) Workflow(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ToWorkflowResponse(h.engine.Workflow()))
}

// ListBoards handles GET /api/v1/boards. ?refresh=true re-fetches from the
// store first.
func (h *BoardHandler) ListBoards(w http.ResponseWriter, r *http.Request) {
	if queryFlag(r, "refresh") {
		if err := h.engine.Refresh(r.Context()); err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
	}
	writeJSON(w, r, http.StatusOK, dto.ToBoardListResponse(h.engine.Boards()))
}

// CreateBoard handles POST /api/v1/boards.
func (h *BoardHandler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBoardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	b, err := h.engine.CreateBoard(r.Context(), req.Name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToBoardResponse(b))
}

// GetBoard handles GET /api/v1/boards/{boardId}. It opens the board, which
// fetches its tasks, and returns them by stage.
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, ParamBoardID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	cols, err := h.engine.OpenBoard(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	b, err := h.engine.Board(id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBoardDetailResponse(b, cols))
}

// DeleteBoard handles DELETE /api/v1/boards/{boardId}. The board and its
// tasks leave local state only after the store confirmed both steps.
func (h *BoardHandler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, ParamBoardID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.engine.DeleteBoard(r.Context(), id); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "board delete failed",
			logging.Board(id),
			slog.Any("error", err),
		)
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
