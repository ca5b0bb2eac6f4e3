package app_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/kanban-engine/internal/app"
	"github.com/jsamuelsen11/kanban-engine/internal/app/mutation"
	"github.com/jsamuelsen11/kanban-engine/internal/domain"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/task"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/workflow"
	"github.com/jsamuelsen11/kanban-engine/internal/ports"
	"github.com/jsamuelsen11/kanban-engine/mocks"
)

func newTaskRepo(t *testing.T, gw ports.Gateway[task.Task], notifier ports.FailureNotifier) (*app.TaskRepository, *mutation.Coordinator) {
	t.Helper()

	coord := mutation.NewCoordinator(notifier, nil, discard)
	t.Cleanup(coord.Wait)
	return app.NewTaskRepository(gw, workflow.Default(), coord, discard), coord
}

func TestTaskRepository_ListForBoard(t *testing.T) {
	t.Parallel()

	gw := mocks.NewMockGateway[task.Task](t)
	gw.EXPECT().List(mock.Anything,
		ports.Filter{ports.ColumnBoardID: "b1"},
		ports.Order{ports.Asc(ports.ColumnCreatedAt), ports.Asc(ports.ColumnID)},
	).Return([]task.Task{{ID: "t1"}}, nil)

	repo, _ := newTaskRepo(t, gw, nil)
	got, err := repo.ListForBoard(context.Background(), "b1")
	if err != nil || len(got) != 1 {
		t.Fatalf("ListForBoard() = %v, %v", got, err)
	}
}

func TestTaskRepository_Create(t *testing.T) {
	t.Parallel()

	gw := mocks.NewMockGateway[task.Task](t)
	gw.EXPECT().Insert(mock.Anything, task.Task{
		BoardID: "b1", OwnerID: ownerA, Title: "Write docs", Status: workflow.StageTodo,
	}).Return(task.Task{
		ID: "t9", BoardID: "b1", OwnerID: ownerA, Title: "Write docs", Status: workflow.StageTodo,
		CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}, nil)

	repo, _ := newTaskRepo(t, gw, nil)
	list := mutation.NewList(task.Task{ID: "t1"})

	created, err := repo.Create(context.Background(), list, ownerA, "b1", " Write docs ", workflow.StageTodo)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	got := list.Snapshot()
	if len(got) != 2 || got[1].ID != created.ID {
		t.Fatalf("list = %v, want t9 appended", taskIDs(got))
	}
}

func TestTaskRepository_Create_NilList(t *testing.T) {
	t.Parallel()

	gw := mocks.NewMockGateway[task.Task](t)
	gw.EXPECT().Insert(mock.Anything, mock.Anything).Return(task.Task{ID: "t1"}, nil)

	repo, _ := newTaskRepo(t, gw, nil)
	if _, err := repo.Create(context.Background(), nil, ownerA, "b1", "x", workflow.StageDone); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
}

func TestTaskRepository_MoveStage_ReconcilesToStore(t *testing.T) {
	t.Parallel()

	gw := mocks.NewMockGateway[task.Task](t)
	// The store answers with its own view of the row.
	gw.EXPECT().Update(mock.Anything, "t1", ports.Patch{ports.ColumnStatus: "todo"}).
		Return(task.Task{ID: "t1", Title: "stored", Status: workflow.StageTodo}, nil)

	repo, _ := newTaskRepo(t, gw, nil)
	list := mutation.NewList(task.Task{ID: "t1", Title: "local", Status: workflow.StageBacklog})

	move, pending, err := repo.MoveStage(context.Background(), list, "t1", workflow.Forward)
	if err != nil {
		t.Fatalf("MoveStage() error = %v", err)
	}
	if !move.Moved() || move.From != workflow.StageBacklog || move.To != workflow.StageTodo {
		t.Fatalf("move = %+v", move)
	}
	if err := pending.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}

	got, _ := list.Get("t1")
	if got.Title != "stored" || got.Status != workflow.StageTodo {
		t.Fatalf("reconciled task = %+v", got)
	}
}

func TestTaskRepository_MoveStage_Boundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stage workflow.Stage
		dir   workflow.Direction
	}{
		{name: "forward from last", stage: workflow.StageDone, dir: workflow.Forward},
		{name: "backward from first", stage: workflow.StageBacklog, dir: workflow.Backward},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// No expectations: any remote call fails the test.
			gw := mocks.NewMockGateway[task.Task](t)
			repo, _ := newTaskRepo(t, gw, nil)
			list := mutation.NewList(task.Task{ID: "t1", Status: tt.stage})

			move, pending, err := repo.MoveStage(context.Background(), list, "t1", tt.dir)
			if err != nil {
				t.Fatalf("MoveStage() error = %v", err)
			}
			if move.Moved() {
				t.Fatalf("move = %+v, want no-op", move)
			}
			select {
			case <-pending.Done():
			default:
				t.Fatal("no-op pending not settled")
			}
			if got, _ := list.Get("t1"); got.Status != tt.stage {
				t.Fatalf("status = %q, want %q", got.Status, tt.stage)
			}
		})
	}
}

func TestTaskRepository_MoveStage_Errors(t *testing.T) {
	t.Parallel()

	repo, _ := newTaskRepo(t, mocks.NewMockGateway[task.Task](t), nil)
	list := mutation.NewList(task.Task{ID: "t1", Status: workflow.Stage("archived")})

	if _, _, err := repo.MoveStage(context.Background(), list, "t1", workflow.Forward); !errors.Is(err, domain.ErrUnknownStage) {
		t.Errorf("unknown stage error = %v, want ErrUnknownStage", err)
	}
	if _, _, err := repo.MoveStage(context.Background(), list, "nope", workflow.Forward); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("missing task error = %v, want ErrNotFound", err)
	}
}

func TestTaskRepository_Remove_NotifiesOnFailure(t *testing.T) {
	t.Parallel()

	gw := mocks.NewMockGateway[task.Task](t)
	gw.EXPECT().Delete(mock.Anything, ports.Filter{ports.ColumnID: "t2"}).Return(0, domain.ErrUnavailable)

	notifier := mocks.NewMockFailureNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(f domain.Failure) bool {
		return f.Operation == app.OpDeleteTask && f.EntityID == "t2"
	})).Return().Once()

	repo, _ := newTaskRepo(t, gw, notifier)
	list := mutation.NewList(task.Task{ID: "t1"}, task.Task{ID: "t2"}, task.Task{ID: "t3"})

	pending, err := repo.Remove(context.Background(), list, "t2")
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := pending.Wait(context.Background()); !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("Wait() error = %v, want ErrUnavailable", err)
	}
	if got := taskIDs(list.Snapshot()); len(got) != 3 || got[1] != "t2" {
		t.Fatalf("list = %v, want t2 back at index 1", got)
	}
}

func TestTaskRepository_Remove_ZeroMatchesIsSuccess(t *testing.T) {
	t.Parallel()

	gw := mocks.NewMockGateway[task.Task](t)
	gw.EXPECT().Delete(mock.Anything, mock.Anything).Return(0, nil)

	repo, _ := newTaskRepo(t, gw, nil)
	list := mutation.NewList(task.Task{ID: "t1"})

	pending, err := repo.Remove(context.Background(), list, "t1")
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := pending.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if list.Len() != 0 {
		t.Fatalf("list length = %d, want 0", list.Len())
	}
}

func TestTaskRepository_MoveStage_ConcurrentMovesEachAdvance(t *testing.T) {
	t.Parallel()

	var (
		mu      sync.Mutex
		patched []string
	)
	gw := mocks.NewMockGateway[task.Task](t)
	gw.EXPECT().Update(mock.Anything, "t1", mock.Anything).
		RunAndReturn(func(_ context.Context, id string, p ports.Patch) (task.Task, error) {
			status, _ := p[ports.ColumnStatus].(string)
			mu.Lock()
			patched = append(patched, status)
			mu.Unlock()
			return task.Task{ID: id, Status: workflow.Stage(status)}, nil
		})

	repo, coord := newTaskRepo(t, gw, nil)
	list := mutation.NewList(task.Task{ID: "t1", Status: workflow.StageBacklog})

	// Five forward moves on a four-stage workflow: three advance, two land
	// on the last stage and stay.
	var (
		wg    sync.WaitGroup
		moved sync.Map
	)
	for i := range 5 {
		wg.Go(func() {
			move, _, err := repo.MoveStage(context.Background(), list, "t1", workflow.Forward)
			if err != nil {
				t.Errorf("MoveStage() error = %v", err)
				return
			}
			moved.Store(i, move)
		})
	}
	wg.Wait()
	coord.Wait()

	var tos []string
	moved.Range(func(_, v any) bool {
		if m := v.(task.Move); m.Moved() {
			tos = append(tos, m.To.String())
		}
		return true
	})
	slices.Sort(tos)
	if want := []string{"done", "review", "todo"}; !slices.Equal(tos, want) {
		t.Fatalf("moved to %v, want each of %v once", tos, want)
	}

	mu.Lock()
	slices.Sort(patched)
	got := slices.Clone(patched)
	mu.Unlock()
	if want := []string{"done", "review", "todo"}; !slices.Equal(got, want) {
		t.Errorf("remote patches = %v, want %v", got, want)
	}
	if cur, _ := list.Get("t1"); cur.Status != workflow.StageDone {
		t.Errorf("status = %q, want done", cur.Status)
	}
}
