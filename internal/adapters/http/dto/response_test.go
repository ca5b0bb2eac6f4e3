package dto_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/jsamuelsen11/kanban-engine/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-engine/internal/domain"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/board"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/session"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/task"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/workflow"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 123000000, time.UTC)

func TestToBoardDetailResponse(t *testing.T) {
	t.Parallel()

	b := board.Board{ID: "b1", Name: "Launch", OwnerID: "owner-1", CreatedAt: testTime}
	cols := task.GroupByStage(workflow.Default(), []task.Task{
		{ID: "t1", BoardID: "b1", Title: "Draft", Status: workflow.StageTodo, CreatedAt: testTime},
		{ID: "t2", BoardID: "b1", Title: "Ship", Status: workflow.StageTodo, CreatedAt: testTime.Add(time.Second)},
	})

	got := dto.ToBoardDetailResponse(b, cols)

	if got.ID != "b1" || got.Name != "Launch" {
		t.Errorf("board = %+v, want b1/Launch", got.BoardResponse)
	}
	if got.CreatedAt != "2026-02-12T15:04:05.123Z" {
		t.Errorf("CreatedAt = %q", got.CreatedAt)
	}
	if len(got.Columns) != 4 {
		t.Fatalf("len(Columns) = %d, want 4", len(got.Columns))
	}
	if got.Columns[0].Stage != "backlog" || len(got.Columns[0].Tasks) != 0 {
		t.Errorf("Columns[0] = %+v, want empty backlog", got.Columns[0])
	}
	if got.Columns[0].Tasks == nil {
		t.Error("empty column should encode as [] not null")
	}
	todo := got.Columns[1]
	if todo.Stage != "todo" || len(todo.Tasks) != 2 || todo.Tasks[0].ID != "t1" || todo.Tasks[1].ID != "t2" {
		t.Errorf("Columns[1] = %+v, want todo with t1, t2", todo)
	}
}

func TestToBoardDetailResponse_JSONShape(t *testing.T) {
	t.Parallel()

	got := dto.ToBoardDetailResponse(board.Board{ID: "b1", Name: "Launch"}, task.GroupByStage(workflow.Default(), nil))

	data, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	for _, key := range []string{"id", "name", "owner_id", "created_at", "columns"} {
		if _, ok := m[key]; !ok {
			t.Errorf("JSON missing key %q in %s", key, data)
		}
	}
}

func TestToBoardListResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToBoardListResponse([]board.Board{{ID: "b2"}, {ID: "b1"}})
	if got.Count != 2 || got.Boards[0].ID != "b2" || got.Boards[1].ID != "b1" {
		t.Errorf("ToBoardListResponse = %+v, want b2, b1 in order", got)
	}

	empty := dto.ToBoardListResponse(nil)
	if empty.Boards == nil || empty.Count != 0 {
		t.Errorf("empty list = %+v, want non-nil empty", empty)
	}
}

func TestToMoveResponse(t *testing.T) {
	t.Parallel()

	moved := task.Move{
		Task: task.Task{ID: "t1", Status: workflow.StageReview},
		From: workflow.StageTodo,
		To:   workflow.StageReview,
	}
	stayed := task.Move{
		Task: task.Task{ID: "t1", Status: workflow.StageDone},
		From: workflow.StageDone,
		To:   workflow.StageDone,
	}

	tests := []struct {
		name    string
		move    task.Move
		settled bool
		want    string
	}{
		{name: "pending", move: moved, want: dto.OutcomePending},
		{name: "settled", move: moved, settled: true, want: dto.OutcomeSettled},
		{name: "boundary", move: stayed, want: dto.OutcomeNoop},
		{name: "boundary waited", move: stayed, settled: true, want: dto.OutcomeNoop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := dto.ToMoveResponse(tt.move, tt.settled)
			if got.Outcome != tt.want {
				t.Errorf("Outcome = %q, want %q", got.Outcome, tt.want)
			}
			if got.From != tt.move.From.String() || got.To != tt.move.To.String() {
				t.Errorf("From/To = %s/%s", got.From, got.To)
			}
		})
	}
}

func TestToWorkflowResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToWorkflowResponse(workflow.Default())
	want := []string{"backlog", "todo", "review", "done"}
	if fmt.Sprint(got.Stages) != fmt.Sprint(want) {
		t.Errorf("Stages = %v, want %v", got.Stages, want)
	}
}

func TestToSessionResponse_OmitsToken(t *testing.T) {
	t.Parallel()

	got := dto.ToSessionResponse(session.Session{OwnerID: "owner-1", AccessToken: "secret", ExpiresAt: testTime})

	data, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(data) != `{"owner_id":"owner-1","expires_at":"2026-02-12T15:04:05.123Z"}` {
		t.Errorf("JSON = %s", data)
	}
}

func TestToFailureListResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToFailureListResponse([]domain.Failure{
		{Operation: "move task", EntityID: "t1", Err: fmt.Errorf("update: %w", domain.ErrRejected)},
		{Operation: "delete task", EntityID: "t2", Err: domain.ErrUnavailable},
	})

	if got.Count != 2 {
		t.Fatalf("Count = %d, want 2", got.Count)
	}
	if got.Failures[0].Kind != dto.KindRejected || got.Failures[0].EntityID != "t1" {
		t.Errorf("Failures[0] = %+v", got.Failures[0])
	}
	if got.Failures[1].Kind != dto.KindUnavailable || got.Failures[1].Operation != "delete task" {
		t.Errorf("Failures[1] = %+v", got.Failures[1])
	}
}
