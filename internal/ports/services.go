package ports

import (
	"context"

	"github.com/jsamuelsen11/kanban-engine/internal/domain"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/board"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/session"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/task"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/workflow"
)

// Pending is the outcome of an optimistic write whose local effect is
// already visible.
type Pending interface {
	// Done is closed once the remote write settled and any rollback ran.
	Done() <-chan struct{}

	// Err returns the outcome once settled, nil while in flight.
	Err() error

	// Wait blocks until settled or ctx is done.
	Wait(ctx context.Context) error
}

// BoardService is the engine surface exposed to the rendering layer.
// Implemented by app.Engine; called by the HTTP handlers.
//
// Reads serve local state and never block on the store. Writes require an
// active session and fail with domain.ErrNoSession otherwise.
type BoardService interface {
	Workflow() workflow.Definition
	Boards() []board.Board
	Board(id string) (board.Board, error)

	// OpenBoard re-fetches the board and its tasks and returns the tasks by
	// stage.
	OpenBoard(ctx context.Context, id string) (task.Columns, error)

	// TasksByStage returns the cached tasks of an opened board.
	TasksByStage(boardID string) task.Columns

	// Refresh re-fetches the board list.
	Refresh(ctx context.Context) error

	CreateBoard(ctx context.Context, name string) (board.Board, error)

	// DeleteBoard removes the board and its tasks. Local state changes only
	// after the store confirmed both steps.
	DeleteBoard(ctx context.Context, id string) error

	CreateTask(ctx context.Context, boardID, title string, stage workflow.Stage) (task.Task, error)

	// MoveTask moves a task one stage and returns the optimistic result.
	MoveTask(ctx context.Context, taskID string, dir workflow.Direction) (task.Move, Pending, error)

	// DeleteTask removes a task optimistically.
	DeleteTask(ctx context.Context, taskID string) (Pending, error)
}

// SessionService hands identities to the engine.
// Implemented by the session adapter; called by the HTTP handlers.
type SessionService interface {
	// SignIn verifies accessToken and makes it the active session.
	// Invalid tokens wrap session.ErrInvalidToken.
	SignIn(ctx context.Context, accessToken string) (session.Session, error)

	// Refresh swaps in a new token for the active identity. The token must
	// name the same subject; domain.ErrNoSession when signed out.
	Refresh(ctx context.Context, accessToken string) (session.Session, error)

	SignOut(ctx context.Context) error
	CurrentSession() (session.Session, bool)
}

// FailureFeed buffers rollback failures until the rendering layer collects
// them.
type FailureFeed interface {
	// Drain returns and forgets all buffered failures, oldest first.
	Drain() []domain.Failure

	// Acknowledge forgets the failure with the given ID and reports whether
	// it was still buffered.
	Acknowledge(id uint64) bool
}
