package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/jsamuelsen11/kanban-engine/internal/app/fanout"
	"github.com/jsamuelsen11/kanban-engine/internal/app/mutation"
	"github.com/jsamuelsen11/kanban-engine/internal/domain"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/board"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/session"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/task"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/workflow"
	"github.com/jsamuelsen11/kanban-engine/internal/ports"
)

// DefaultReloadWorkers bounds concurrent task fetches when boards are
// re-opened after a session change.
const DefaultReloadWorkers = 4

// Compile-time check that Engine implements ports.BoardService.
var _ ports.BoardService = (*Engine)(nil)

// generation is the identity-scoped local state. A session change replaces
// the whole generation, so mutations still in flight against the old one
// can only touch lists nobody reads any more.
type generation struct {
	id     uint64
	owner  string
	boards *mutation.List[board.Board]

	mu    sync.RWMutex
	tasks map[string]*mutation.List[task.Task]
}

func newGeneration(id uint64, owner string) *generation {
	return &generation{
		id:     id,
		owner:  owner,
		boards: mutation.NewList[board.Board](),
		tasks:  make(map[string]*mutation.List[task.Task]),
	}
}

func (g *generation) taskList(boardID string) (*mutation.List[task.Task], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	l, ok := g.tasks[boardID]
	return l, ok
}

// openList returns the board's task list, creating it if needed.
func (g *generation) openList(boardID string) *mutation.List[task.Task] {
	g.mu.Lock()
	defer g.mu.Unlock()
	l, ok := g.tasks[boardID]
	if !ok {
		l = mutation.NewList[task.Task]()
		g.tasks[boardID] = l
	}
	return l
}

func (g *generation) dropTasks(boardID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.tasks, boardID)
}

func (g *generation) openBoards() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.tasks))
	for id := range g.tasks {
		ids = append(ids, id)
	}
	return ids
}

// findTask returns the open list holding the task.
func (g *generation) findTask(taskID string) (*mutation.List[task.Task], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, l := range g.tasks {
		if _, ok := l.Get(taskID); ok {
			return l, true
		}
	}
	return nil, false
}

// Engine is the board state engine bound to one session boundary. It keeps
// the signed-in identity's boards and the tasks of every opened board in
// memory, serves reads from there, and routes writes through the
// repositories.
type Engine struct {
	boards  *BoardRepository
	tasks   *TaskRepository
	session ports.SessionBoundary
	coord   *mutation.Coordinator
	workers int
	logger  *slog.Logger

	gen     *mutation.SafeRef[*generation]
	nextGen atomic.Uint64

	mu      sync.Mutex
	sub     ports.Subscription
	baseCtx context.Context
	reloads sync.WaitGroup
}

// NewEngine creates an Engine. Call Start to bind it to the session.
func NewEngine(boards *BoardRepository, tasks *TaskRepository, boundary ports.SessionBoundary, coord *mutation.Coordinator, reloadWorkers int, logger *slog.Logger) *Engine {
	if reloadWorkers < 1 {
		reloadWorkers = DefaultReloadWorkers
	}
	return &Engine{
		boards:  boards,
		tasks:   tasks,
		session: boundary,
		coord:   coord,
		workers: reloadWorkers,
		logger:  logger,
		gen:     mutation.NewRef(newGeneration(0, "")),
		baseCtx: context.Background(),
	}
}

// Start subscribes to session changes and loads the current identity's
// boards. Calling Start again is a no-op.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	if e.sub != nil {
		e.mu.Unlock()
		return nil
	}
	e.baseCtx = context.WithoutCancel(ctx)
	e.sub = e.session.OnSessionChange(e.onSessionChange)
	e.mu.Unlock()

	s, ok := e.session.CurrentSession()
	gen := e.swap(s, ok)
	if !ok {
		return nil
	}
	return e.load(ctx, gen, nil)
}

// Close releases the session subscription and waits for reloads and
// in-flight writes to settle. It is safe to call more than once.
func (e *Engine) Close() {
	e.mu.Lock()
	sub := e.sub
	e.sub = nil
	e.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}
	e.Settle()
}

// Settle blocks until session reloads and submitted writes have finished.
func (e *Engine) Settle() {
	e.reloads.Wait()
	e.coord.Wait()
}

func (e *Engine) onSessionChange(ev session.Event) {
	var (
		s  session.Session
		ok = ev.Session != nil
	)
	if ok {
		s = *ev.Session
	}

	reopen := e.current().openBoards()
	gen := e.swap(s, ok)

	e.mu.Lock()
	ctx := e.baseCtx
	e.mu.Unlock()

	e.logger.InfoContext(ctx, "session changed, local state discarded",
		slog.String("event", string(ev.Kind)),
		slog.Uint64("generation", gen.id),
	)

	if !ok {
		return
	}

	e.reloads.Add(1)
	go func() {
		defer e.reloads.Done()
		if err := e.load(ctx, gen, reopen); err != nil {
			e.logger.ErrorContext(ctx, "failed to reload after session change",
				slog.String("operation", "Reload"),
				slog.Uint64("generation", gen.id),
				slog.Any("error", err),
			)
		}
	}()
}

// swap installs a fresh generation for the given identity.
func (e *Engine) swap(s session.Session, signedIn bool) *generation {
	owner := ""
	if signedIn {
		owner = s.OwnerID
	}
	gen := newGeneration(e.nextGen.Add(1), owner)
	e.gen.Set(gen)
	return gen
}

func (e *Engine) current() *generation {
	return e.gen.Get()
}

// load fetches gen's boards and re-opens the listed boards that still
// exist.
func (e *Engine) load(ctx context.Context, gen *generation, reopen []string) error {
	boards, err := e.boards.ListOwned(ctx, gen.owner)
	if err != nil {
		return err
	}
	gen.boards.Replace(boards)

	ids := make([]string, 0, len(reopen))
	for _, id := range reopen {
		if _, ok := gen.boards.Get(id); ok {
			ids = append(ids, id)
		}
	}

	results := fanout.Run(ctx, e.workers, ids, e.tasks.ListForBoard)
	for _, r := range results {
		if r.Err == nil {
			gen.openList(r.Item).Replace(r.Value)
		}
	}
	return fanout.Errors(results)
}

// scope returns the generation bound to the active session.
func (e *Engine) scope() (*generation, error) {
	s, ok := e.session.CurrentSession()
	if !ok {
		return nil, domain.ErrNoSession
	}
	gen := e.current()
	if gen.owner != s.OwnerID {
		return nil, fmt.Errorf("%w: engine not bound to the current session", domain.ErrNoSession)
	}
	return gen, nil
}

// Workflow returns the stage ordering of every board.
func (e *Engine) Workflow() workflow.Definition {
	return e.tasks.Workflow()
}

// Boards returns the loaded boards, newest first.
func (e *Engine) Boards() []board.Board {
	return e.current().boards.Snapshot()
}

// Board returns one loaded board.
func (e *Engine) Board(id string) (board.Board, error) {
	b, ok := e.current().boards.Get(id)
	if !ok {
		return board.Board{}, fmt.Errorf("board %s: %w", id, domain.ErrNotFound)
	}
	return b, nil
}

// Tasks returns the loaded tasks of a board in creation order, or an empty
// slice if the board has not been opened.
func (e *Engine) Tasks(boardID string) []task.Task {
	if l, ok := e.current().taskList(boardID); ok {
		return l.Snapshot()
	}
	return []task.Task{}
}

// TasksByStage returns the loaded tasks of a board grouped into one column
// per workflow stage.
func (e *Engine) TasksByStage(boardID string) task.Columns {
	return task.GroupByStage(e.Workflow(), e.Tasks(boardID))
}

// Refresh re-fetches the board list and forgets the tasks of boards that
// no longer exist.
func (e *Engine) Refresh(ctx context.Context) error {
	gen, err := e.scope()
	if err != nil {
		return err
	}

	boards, err := e.boards.ListOwned(ctx, gen.owner)
	if err != nil {
		return err
	}
	gen.boards.Replace(boards)

	for _, id := range gen.openBoards() {
		if _, ok := gen.boards.Get(id); !ok {
			gen.dropTasks(id)
		}
	}
	return nil
}

// OpenBoard re-fetches a loaded board and its tasks and returns the tasks by
// stage. The board row is refreshed in place. A board gone from the store
// leaves local state along with its tasks.
func (e *Engine) OpenBoard(ctx context.Context, id string) (task.Columns, error) {
	gen, err := e.scope()
	if err != nil {
		return nil, err
	}
	if _, ok := gen.boards.Get(id); !ok {
		return nil, fmt.Errorf("board %s: %w", id, domain.ErrNotFound)
	}

	b, err := e.boards.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			gen.boards.Drop(id)
			gen.dropTasks(id)
		}
		return nil, err
	}
	gen.boards.Append(b)

	tasks, err := e.tasks.ListForBoard(ctx, id)
	if err != nil {
		return nil, err
	}

	l := gen.openList(id)
	l.Replace(tasks)
	return task.GroupByStage(e.Workflow(), l.Snapshot()), nil
}

// CreateBoard creates a board owned by the signed-in identity.
func (e *Engine) CreateBoard(ctx context.Context, name string) (board.Board, error) {
	gen, err := e.scope()
	if err != nil {
		return board.Board{}, err
	}
	return e.boards.Create(ctx, gen.boards, gen.owner, name)
}

// DeleteBoard deletes a board and its tasks. On success both leave local
// state. If only the tasks could be deleted, the board stays and its cached
// tasks are dropped so the next OpenBoard re-fetches them.
func (e *Engine) DeleteBoard(ctx context.Context, id string) error {
	gen, err := e.scope()
	if err != nil {
		return err
	}
	if _, ok := gen.boards.Get(id); !ok {
		return fmt.Errorf("board %s: %w", id, domain.ErrNotFound)
	}

	if err := e.boards.Remove(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrCascadeIncomplete) {
			gen.dropTasks(id)
		}
		return err
	}

	gen.boards.Drop(id)
	gen.dropTasks(id)
	return nil
}

// CreateTask creates a task on a loaded board. If the board is open the
// task is appended to its list.
func (e *Engine) CreateTask(ctx context.Context, boardID, title string, stage workflow.Stage) (task.Task, error) {
	gen, err := e.scope()
	if err != nil {
		return task.Task{}, err
	}
	if _, ok := gen.boards.Get(boardID); !ok {
		return task.Task{}, fmt.Errorf("board %s: %w", boardID, domain.ErrNotFound)
	}

	l, _ := gen.taskList(boardID)
	return e.tasks.Create(ctx, l, gen.owner, boardID, title, stage)
}

// MoveTask moves a task of an open board one stage in dir.
func (e *Engine) MoveTask(ctx context.Context, taskID string, dir workflow.Direction) (task.Move, ports.Pending, error) {
	gen, err := e.scope()
	if err != nil {
		return task.Move{}, nil, err
	}
	l, ok := gen.findTask(taskID)
	if !ok {
		return task.Move{}, nil, fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound)
	}

	move, pending, err := e.tasks.MoveStage(ctx, l, taskID, dir)
	if err != nil {
		return task.Move{}, nil, err
	}
	return move, pending, nil
}

// DeleteTask deletes a task of an open board.
func (e *Engine) DeleteTask(ctx context.Context, taskID string) (ports.Pending, error) {
	gen, err := e.scope()
	if err != nil {
		return nil, err
	}
	l, ok := gen.findTask(taskID)
	if !ok {
		return nil, fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound)
	}

	pending, err := e.tasks.Remove(ctx, l, taskID)
	if err != nil {
		return nil, err
	}
	return pending, nil
}
