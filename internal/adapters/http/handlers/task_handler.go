package handlers

import (
	"errors"
	"net/http"

	"github.com/jsamuelsen11/kanban-engine/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-engine/internal/domain"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/workflow"
	"github.com/jsamuelsen11/kanban-engine/internal/ports"
)

// TaskHandler serves task writes. Moves and deletes are optimistic: they
// answer 202 with the local result unless the caller asks to wait.
type TaskHandler struct {
	engine   ports.BoardService
	failures ports.FailureFeed
}

// NewTaskHandler creates a TaskHandler. A failure reported in a ?wait=true
// response is acknowledged on failures so GET /api/v1/failures does not
// report it again. failures may be nil.
func NewTaskHandler(engine ports.BoardService, failures ports.FailureFeed) *TaskHandler {
	return &TaskHandler{engine: engine, failures: failures}
}

// CreateTask handles POST /api/v1/boards/{boardId}/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathParam(r, ParamBoardID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	stage := workflow.Stage(req.Stage)
	if stage == "" {
		stage = h.engine.Workflow().First()
	}

	t, err := h.engine.CreateTask(r.Context(), boardID, req.Title, stage)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToTaskResponse(t))
}

// MoveTask handles POST /api/v1/tasks/{taskId}/move.
func (h *TaskHandler) MoveTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathParam(r, ParamTaskID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.MoveTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	move, pending, err := h.engine.MoveTask(r.Context(), taskID, req.Dir())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if !move.Moved() {
		writeJSON(w, r, http.StatusOK, dto.ToMoveResponse(move, true))
		return
	}

	settled, ok := h.settle(w, r, pending)
	if !ok {
		return
	}
	writeJSON(w, r, acceptedUnless(settled), dto.ToMoveResponse(move, settled))
}

// DeleteTask handles DELETE /api/v1/tasks/{taskId}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathParam(r, ParamTaskID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	pending, err := h.engine.DeleteTask(r.Context(), taskID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	settled, ok := h.settle(w, r, pending)
	if !ok {
		return
	}

	outcome := dto.OutcomePending
	if settled {
		outcome = dto.OutcomeSettled
	}
	writeJSON(w, r, acceptedUnless(settled), dto.DeleteTaskResponse{ID: taskID, Outcome: outcome})
}

func acceptedUnless(settled bool) int {
	if settled {
		return http.StatusOK
	}
	return http.StatusAccepted
}

// settle waits for p when the caller asked for ?wait=true. It returns
// whether the write settled and writes an error response if the remote
// write failed; ok is false in that case.
func (h *TaskHandler) settle(w http.ResponseWriter, r *http.Request, p ports.Pending) (settled, ok bool) {
	if !queryFlag(r, "wait") {
		return false, true
	}
	if err := p.Wait(r.Context()); err != nil {
		var failure domain.Failure
		if h.failures != nil && errors.As(err, &failure) {
			h.failures.Acknowledge(failure.ID)
		}
		dto.WriteErrorResponse(w, r, err)
		return false, false
	}
	return true, true
}
