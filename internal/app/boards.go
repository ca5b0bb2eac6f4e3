// Package app holds the board engine: repositories that pair local state with
// the persistence gateway, and the Engine that binds them to a session.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/kanban-engine/internal/app/mutation"
	"github.com/jsamuelsen11/kanban-engine/internal/domain"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/board"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/task"
	"github.com/jsamuelsen11/kanban-engine/internal/platform/logging"
	"github.com/jsamuelsen11/kanban-engine/internal/ports"
)

// BoardRepository reads and writes boards through the persistence gateway.
// Board writes are pessimistic: local state changes only after the store
// confirmed the write.
type BoardRepository struct {
	boards ports.Gateway[board.Board]
	tasks  ports.Gateway[task.Task]
	logger *slog.Logger
}

// NewBoardRepository creates a BoardRepository. The task gateway is used to
// cascade board deletes.
func NewBoardRepository(boards ports.Gateway[board.Board], tasks ports.Gateway[task.Task], logger *slog.Logger) *BoardRepository {
	return &BoardRepository{
		boards: boards,
		tasks:  tasks,
		logger: logger,
	}
}

// ListOwned returns the owner's boards, newest first.
func (r *BoardRepository) ListOwned(ctx context.Context, ownerID string) ([]board.Board, error) {
	boards, err := r.boards.List(ctx,
		ports.Eq(ports.ColumnOwnerID, ownerID),
		ports.Order{ports.Desc(ports.ColumnCreatedAt), ports.Desc(ports.ColumnID)},
	)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to list boards",
			slog.String("operation", "ListOwned"),
			logging.Owner(ownerID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return boards, nil
}

// Get fetches a single board.
func (r *BoardRepository) Get(ctx context.Context, id string) (board.Board, error) {
	rows, err := r.boards.List(ctx, ports.Eq(ports.ColumnID, id), nil)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to fetch board",
			slog.String("operation", "GetBoard"),
			logging.Board(id),
			slog.Any("error", err),
		)
		return board.Board{}, err
	}
	if len(rows) == 0 {
		return board.Board{}, fmt.Errorf("board %s: %w", id, domain.ErrNotFound)
	}
	return rows[0], nil
}

// Create validates and inserts a board, then puts the stored row at the
// front of list. Invalid input is reported before any remote call and
// leaves list untouched.
func (r *BoardRepository) Create(ctx context.Context, list *mutation.List[board.Board], ownerID, name string) (board.Board, error) {
	b, err := board.New(ownerID, name)
	if err != nil {
		return board.Board{}, err
	}

	r.logger.InfoContext(ctx, "creating board", slog.String("name", b.Name))

	created, err := r.boards.Insert(ctx, b)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to create board",
			slog.String("operation", "CreateBoard"),
			slog.Any("error", err),
		)
		return board.Board{}, err
	}

	if list != nil {
		list.Prepend(created)
	}
	return created, nil
}

// Remove deletes the board's tasks, then the board. If the tasks cannot be
// deleted the board is not attempted and the error wraps both
// domain.ErrCascadeIncomplete and the cause. A failure deleting the board
// itself is returned as is; its tasks are gone by then.
func (r *BoardRepository) Remove(ctx context.Context, id string) error {
	r.logger.InfoContext(ctx, "deleting board", logging.Board(id))

	plan := mutation.NewPlan("DeleteBoard")
	_ = plan.Add(mutation.Step{
		Name: "delete tasks of board " + id,
		Do: func(ctx context.Context) error {
			_, err := r.tasks.Delete(ctx, ports.Eq(ports.ColumnBoardID, id))
			return err
		},
	})
	_ = plan.Add(mutation.Step{
		Name: "delete board " + id,
		Do: func(ctx context.Context) error {
			_, err := r.boards.Delete(ctx, ports.Eq(ports.ColumnID, id))
			return err
		},
	})

	err := plan.Commit(ctx)
	if err == nil {
		return nil
	}

	var stepErr *mutation.StepError
	if errors.As(err, &stepErr) && stepErr.Index == 0 {
		return fmt.Errorf("deleting board %s: %w: %w", id, domain.ErrCascadeIncomplete, stepErr.Err)
	}
	if stepErr != nil {
		return fmt.Errorf("deleting board %s: %w", id, stepErr.Err)
	}
	return err
}
