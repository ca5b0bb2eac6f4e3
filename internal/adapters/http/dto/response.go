// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"errors"
	"time"

	"github.com/jsamuelsen11/kanban-engine/internal/domain"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/board"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/session"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/task"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/workflow"
)

// Outcome of an optimistic write as seen by the caller.
const (
	OutcomePending = "pending"
	OutcomeSettled = "settled"
	OutcomeNoop    = "noop"
)

// Failure kinds reported in FailureResponse.
const (
	KindRejected    = "rejected"
	KindUnavailable = "unavailable"
)

// BoardResponse represents a single board.
type BoardResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	OwnerID   string `json:"owner_id"`
	CreatedAt string `json:"created_at"`
}

// BoardListResponse represents the board list, newest first.
type BoardListResponse struct {
	Boards []BoardResponse `json:"boards"`
	Count  int             `json:"count"`
}

// BoardDetailResponse is an opened board with its tasks by stage.
type BoardDetailResponse struct {
	BoardResponse
	Columns []ColumnResponse `json:"columns"`
}

// ColumnResponse is one workflow stage and its tasks in creation order.
type ColumnResponse struct {
	Stage string         `json:"stage"`
	Tasks []TaskResponse `json:"tasks"`
}

// TaskResponse represents a single task.
type TaskResponse struct {
	ID        string `json:"id"`
	BoardID   string `json:"board_id"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// MoveResponse reports the optimistic result of a move.
type MoveResponse struct {
	Task    TaskResponse `json:"task"`
	From    string       `json:"from"`
	To      string       `json:"to"`
	Outcome string       `json:"outcome"`
}

// DeleteTaskResponse reports the optimistic result of a task delete.
type DeleteTaskResponse struct {
	ID      string `json:"id"`
	Outcome string `json:"outcome"`
}

// WorkflowResponse lists the stages in order.
type WorkflowResponse struct {
	Stages []string `json:"stages"`
}

// SessionResponse describes the active identity. The token is never echoed.
type SessionResponse struct {
	OwnerID   string `json:"owner_id"`
	ExpiresAt string `json:"expires_at,omitempty"`
}

// FailureResponse is one rolled back optimistic write.
type FailureResponse struct {
	Operation string `json:"operation"`
	EntityID  string `json:"entity_id"`
	Kind      string `json:"kind"`
	Detail    string `json:"detail"`
}

// FailureListResponse is the drained failure feed, oldest first.
type FailureListResponse struct {
	Failures []FailureResponse `json:"failures"`
	Count    int               `json:"count"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// ToBoardResponse converts a domain Board to its HTTP representation.
func ToBoardResponse(b board.Board) BoardResponse {
	return BoardResponse{
		ID:        b.ID,
		Name:      b.Name,
		OwnerID:   b.OwnerID,
		CreatedAt: formatTime(b.CreatedAt),
	}
}

// ToBoardListResponse converts boards in display order.
func ToBoardListResponse(boards []board.Board) BoardListResponse {
	items := make([]BoardResponse, len(boards))
	for i, b := range boards {
		items[i] = ToBoardResponse(b)
	}
	return BoardListResponse{Boards: items, Count: len(items)}
}

// ToBoardDetailResponse combines a board with its columns.
func ToBoardDetailResponse(b board.Board, cols task.Columns) BoardDetailResponse {
	columns := make([]ColumnResponse, len(cols))
	for i, col := range cols {
		tasks := make([]TaskResponse, len(col.Tasks))
		for j, t := range col.Tasks {
			tasks[j] = ToTaskResponse(t)
		}
		columns[i] = ColumnResponse{Stage: col.Stage.String(), Tasks: tasks}
	}
	return BoardDetailResponse{BoardResponse: ToBoardResponse(b), Columns: columns}
}

// ToTaskResponse converts a domain Task to its HTTP representation.
func ToTaskResponse(t task.Task) TaskResponse {
	return TaskResponse{
		ID:        t.ID,
		BoardID:   t.BoardID,
		Title:     t.Title,
		Status:    t.Status.String(),
		CreatedAt: formatTime(t.CreatedAt),
	}
}

// ToMoveResponse converts a move. A move that stayed in place is a no-op
// regardless of settled.
func ToMoveResponse(m task.Move, settled bool) MoveResponse {
	resp := MoveResponse{
		Task:    ToTaskResponse(m.Task),
		From:    m.From.String(),
		To:      m.To.String(),
		Outcome: OutcomePending,
	}
	switch {
	case !m.Moved():
		resp.Outcome = OutcomeNoop
	case settled:
		resp.Outcome = OutcomeSettled
	}
	return resp
}

// ToWorkflowResponse lists def's stages.
func ToWorkflowResponse(def workflow.Definition) WorkflowResponse {
	stages := def.Stages()
	names := make([]string, len(stages))
	for i, s := range stages {
		names[i] = s.String()
	}
	return WorkflowResponse{Stages: names}
}

// ToSessionResponse describes s without its token.
func ToSessionResponse(s session.Session) SessionResponse {
	return SessionResponse{OwnerID: s.OwnerID, ExpiresAt: formatTime(s.ExpiresAt)}
}

// ToFailureListResponse converts drained failures.
func ToFailureListResponse(failures []domain.Failure) FailureListResponse {
	items := make([]FailureResponse, len(failures))
	for i, f := range failures {
		kind := KindUnavailable
		if errors.Is(f.Err, domain.ErrRejected) {
			kind = KindRejected
		}
		items[i] = FailureResponse{
			Operation: f.Operation,
			EntityID:  f.EntityID,
			Kind:      kind,
			Detail:    f.Err.Error(),
		}
	}
	return FailureListResponse{Failures: items, Count: len(items)}
}

// Probe states.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"

	SessionActive = "active"
	SessionNone   = "none"
)

// HealthResponse is the liveness body.
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadinessResponse is the readiness body. Checks maps each registered
// component to "ok" or its failure message.
type ReadinessResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks"`
	Session string            `json:"session"`
}

// ToReadinessResponse summarizes health check results. Session is left for
// the caller.
func ToReadinessResponse(results map[string]error) ReadinessResponse {
	resp := ReadinessResponse{Status: HealthReady, Checks: make(map[string]string, len(results))}
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = HealthNotReady
			continue
		}
		resp.Checks[name] = HealthOK
	}
	return resp
}
