package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/kanban-engine/internal/app/mutation"
	"github.com/jsamuelsen11/kanban-engine/internal/domain"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/task"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/workflow"
	"github.com/jsamuelsen11/kanban-engine/internal/platform/logging"
	"github.com/jsamuelsen11/kanban-engine/internal/ports"
)

// Operation names reported in failures, logs and metrics.
const (
	OpMoveTask   = "move task"
	OpDeleteTask = "delete task"
)

// TaskRepository reads and writes the tasks of one board at a time. Moves
// and deletes are optimistic and run through the coordinator; creates are
// pessimistic.
type TaskRepository struct {
	gateway ports.Gateway[task.Task]
	def     workflow.Definition
	coord   *mutation.Coordinator
	logger  *slog.Logger
}

// NewTaskRepository creates a TaskRepository bound to a workflow.
func NewTaskRepository(gateway ports.Gateway[task.Task], def workflow.Definition, coord *mutation.Coordinator, logger *slog.Logger) *TaskRepository {
	return &TaskRepository{
		gateway: gateway,
		def:     def,
		coord:   coord,
		logger:  logger,
	}
}

// ListForBoard returns the board's tasks in creation order.
func (r *TaskRepository) ListForBoard(ctx context.Context, boardID string) ([]task.Task, error) {
	tasks, err := r.gateway.List(ctx,
		ports.Eq(ports.ColumnBoardID, boardID),
		ports.Order{ports.Asc(ports.ColumnCreatedAt), ports.Asc(ports.ColumnID)},
	)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to list tasks",
			slog.String("operation", "ListForBoard"),
			logging.Board(boardID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return tasks, nil
}

// Create validates and inserts a task, then appends the stored row to list.
// list may be nil when the board's tasks are not loaded.
func (r *TaskRepository) Create(ctx context.Context, list *mutation.List[task.Task], ownerID, boardID, title string, stage workflow.Stage) (task.Task, error) {
	t, err := task.New(r.def, ownerID, boardID, title, stage)
	if err != nil {
		return task.Task{}, err
	}

	r.logger.InfoContext(ctx, "creating task",
		logging.Board(boardID),
		slog.String("stage", stage.String()),
	)

	created, err := r.gateway.Insert(ctx, t)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to create task",
			slog.String("operation", "CreateTask"),
			logging.Board(boardID),
			slog.Any("error", err),
		)
		return task.Task{}, err
	}

	if list != nil {
		list.Append(created)
	}
	return created, nil
}

// Remove takes the task out of list immediately and deletes it remotely. If
// the delete fails the task goes back to where it was.
func (r *TaskRepository) Remove(ctx context.Context, list *mutation.List[task.Task], id string) (*mutation.Pending, error) {
	var removal mutation.Removal[task.Task]
	return mutation.Submit(ctx, r.coord, mutation.Mutation[int]{
		Operation: OpDeleteTask,
		EntityID:  id,
		Apply: func() (func(), error) {
			rm, err := list.Remove(id)
			if err != nil {
				return nil, err
			}
			removal = rm
			return func() { list.Reinsert(removal) }, nil
		},
		Write: func(ctx context.Context) (int, error) {
			return r.gateway.Delete(ctx, ports.Eq(ports.ColumnID, id))
		},
		Confirm: func(int) {
			list.Forget(removal)
		},
	})
}

// errStay aborts a move that lands on the stage the task is already in.
var errStay = errors.New("task stays in its stage")

// MoveStage moves the task one stage in dir. At either end of the workflow
// the move is a no-op: no remote write is made and the returned Pending is
// already settled. Otherwise the new stage is visible in list at once and
// is restored if the remote update fails.
func (r *TaskRepository) MoveStage(ctx context.Context, list *mutation.List[task.Task], id string, dir workflow.Direction) (task.Move, *mutation.Pending, error) {
	var (
		move   task.Move
		change mutation.Change[task.Task]
	)
	pending, err := mutation.Submit(ctx, r.coord, mutation.Mutation[task.Task]{
		Operation: OpMoveTask,
		EntityID:  id,
		Apply: func() (func(), error) {
			// The target stage is derived from the status held under the
			// list lock so concurrent moves each advance one step.
			c, changed, err := list.Edit(id, func(t *task.Task) (bool, error) {
				to, err := r.def.Adjacent(t.Status, dir)
				if err != nil {
					return false, err
				}
				move = task.Move{Task: *t, From: t.Status, To: to}
				if !move.Moved() {
					return false, nil
				}
				t.Status = to
				return true, nil
			})
			if err != nil {
				return nil, err
			}
			if !changed {
				return nil, errStay
			}
			change = c
			move.Task = c.After
			return func() { list.Restore(change) }, nil
		},
		Write: func(ctx context.Context) (task.Task, error) {
			return r.gateway.Update(ctx, id, ports.Patch{ports.ColumnStatus: move.To.String()})
		},
		Confirm: func(stored task.Task) {
			list.Reconcile(change, stored)
		},
	})
	switch {
	case errors.Is(err, errStay):
		return move, mutation.Resolved(nil), nil
	case errors.Is(err, domain.ErrNotFound):
		return task.Move{}, nil, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	case err != nil:
		return task.Move{}, nil, err
	}
	return move, pending, nil
}

// Workflow returns the stage ordering moves are computed against.
func (r *TaskRepository) Workflow() workflow.Definition {
	return r.def
}
