package app_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/jsamuelsen11/kanban-engine/internal/app"
	"github.com/jsamuelsen11/kanban-engine/internal/app/mutation"
	"github.com/jsamuelsen11/kanban-engine/internal/domain"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/board"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/session"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/task"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/workflow"
	"github.com/jsamuelsen11/kanban-engine/internal/ports"
)

const (
	ownerA = "owner-a"
	ownerB = "owner-b"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// memGateway is an in-memory ports.Gateway with injectable failures.
type memGateway[T any] struct {
	mu     sync.Mutex
	prefix string
	rows   []T
	seq    int
	clock  time.Time

	fields func(T) map[string]string
	assign func(row T, id string, at time.Time) T
	patch  func(row T, p ports.Patch) T

	// fail maps a method name to the error it returns. deleteFail is
	// consulted per filter column for Delete.
	fail       map[string]error
	deleteFail map[string]error
	calls      map[string]int
	block      map[string]chan struct{}
}

func newMemGateway[T any](prefix string, fields func(T) map[string]string, assign func(T, string, time.Time) T, patch func(T, ports.Patch) T) *memGateway[T] {
	return &memGateway[T]{
		prefix:     prefix,
		clock:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		fields:     fields,
		assign:     assign,
		patch:      patch,
		fail:       make(map[string]error),
		deleteFail: make(map[string]error),
		calls:      make(map[string]int),
		block:      make(map[string]chan struct{}),
	}
}

func (g *memGateway[T]) enter(method string) error {
	g.mu.Lock()
	g.calls[method]++
	gate := g.block[method]
	err := g.fail[method]
	g.mu.Unlock()

	if gate != nil {
		<-gate
	}
	return err
}

func (g *memGateway[T]) setFail(method string, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.fail[method] = err
}

// hold makes method block until the returned function is called.
func (g *memGateway[T]) hold(method string) (release func()) {
	gate := make(chan struct{})
	g.mu.Lock()
	g.block[method] = gate
	g.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.block, method)
			g.mu.Unlock()
			close(gate)
		})
	}
}

func (g *memGateway[T]) count(method string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls[method]
}

func (g *memGateway[T]) matches(row T, filter ports.Filter) bool {
	f := g.fields(row)
	for col, want := range filter {
		if f[col] != want {
			return false
		}
	}
	return true
}

func (g *memGateway[T]) List(_ context.Context, filter ports.Filter, order ports.Order) ([]T, error) {
	if err := g.enter("List"); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	out := []T{}
	for _, row := range g.rows {
		if g.matches(row, filter) {
			out = append(out, row)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		fi, fj := g.fields(out[i]), g.fields(out[j])
		for _, s := range order {
			if fi[s.Column] == fj[s.Column] {
				continue
			}
			if s.Descending {
				return fi[s.Column] > fj[s.Column]
			}
			return fi[s.Column] < fj[s.Column]
		}
		return false
	})
	return out, nil
}

func (g *memGateway[T]) Insert(_ context.Context, row T) (T, error) {
	if err := g.enter("Insert"); err != nil {
		var zero T
		return zero, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.seq++
	g.clock = g.clock.Add(time.Second)
	stored := g.assign(row, fmt.Sprintf("%s-%03d", g.prefix, g.seq), g.clock)
	g.rows = append(g.rows, stored)
	return stored, nil
}

func (g *memGateway[T]) Update(_ context.Context, id string, p ports.Patch) (T, error) {
	var zero T
	if err := g.enter("Update"); err != nil {
		return zero, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for i, row := range g.rows {
		if g.fields(row)[ports.ColumnID] == id {
			g.rows[i] = g.patch(row, p)
			return g.rows[i], nil
		}
	}
	return zero, fmt.Errorf("update %s: %w: %w", id, domain.ErrRejected, domain.ErrNotFound)
}

func (g *memGateway[T]) Delete(_ context.Context, filter ports.Filter) (int, error) {
	if err := g.enter("Delete"); err != nil {
		return 0, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, col := range filter.Columns() {
		if err := g.deleteFail[col]; err != nil {
			return 0, err
		}
	}

	kept := g.rows[:0:0]
	n := 0
	for _, row := range g.rows {
		if g.matches(row, filter) {
			n++
			continue
		}
		kept = append(kept, row)
	}
	g.rows = kept
	return n, nil
}

func (g *memGateway[T]) all() []T {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]T(nil), g.rows...)
}

const stamp = "2006-01-02T15:04:05.000000000Z"

func newBoardGateway() *memGateway[board.Board] {
	return newMemGateway("board",
		func(b board.Board) map[string]string {
			return map[string]string{
				ports.ColumnID:        b.ID,
				ports.ColumnOwnerID:   b.OwnerID,
				ports.ColumnCreatedAt: b.CreatedAt.UTC().Format(stamp),
			}
		},
		func(b board.Board, id string, at time.Time) board.Board {
			b.ID, b.CreatedAt = id, at
			return b
		},
		func(b board.Board, p ports.Patch) board.Board {
			if v, ok := p[ports.ColumnName].(string); ok {
				b.Name = v
			}
			return b
		},
	)
}

func newTaskGateway() *memGateway[task.Task] {
	return newMemGateway("task",
		func(t task.Task) map[string]string {
			return map[string]string{
				ports.ColumnID:        t.ID,
				ports.ColumnOwnerID:   t.OwnerID,
				ports.ColumnBoardID:   t.BoardID,
				ports.ColumnStatus:    t.Status.String(),
				ports.ColumnCreatedAt: t.CreatedAt.UTC().Format(stamp),
			}
		},
		func(t task.Task, id string, at time.Time) task.Task {
			t.ID, t.CreatedAt = id, at
			return t
		},
		func(t task.Task, p ports.Patch) task.Task {
			if v, ok := p[ports.ColumnStatus].(string); ok {
				t.Status = workflow.Stage(v)
			}
			return t
		},
	)
}

// fakeSession is a ports.SessionBoundary driven by the test.
type fakeSession struct {
	mu        sync.Mutex
	cur       *session.Session
	listeners map[int]func(session.Event)
	next      int
}

type unsubscribeFunc func()

func (f unsubscribeFunc) Unsubscribe() { f() }

func newFakeSession(owner string) *fakeSession {
	f := &fakeSession{listeners: make(map[int]func(session.Event))}
	if owner != "" {
		f.cur = &session.Session{OwnerID: owner, AccessToken: "token-" + owner}
	}
	return f
}

func (f *fakeSession) CurrentSession() (session.Session, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cur == nil {
		return session.Session{}, false
	}
	return *f.cur, true
}

func (f *fakeSession) OnSessionChange(listener func(session.Event)) ports.Subscription {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.next
	f.next++
	f.listeners[id] = listener
	return unsubscribeFunc(func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.listeners, id)
	})
}

func (f *fakeSession) SignOut(context.Context) error {
	f.emit(nil, session.SignedOut)
	return nil
}

func (f *fakeSession) signIn(owner string) {
	f.emit(&session.Session{OwnerID: owner, AccessToken: "token-" + owner}, session.SignedIn)
}

func (f *fakeSession) emit(s *session.Session, kind session.EventKind) {
	f.mu.Lock()
	f.cur = s
	listeners := make([]func(session.Event), 0, len(f.listeners))
	for _, l := range f.listeners {
		listeners = append(listeners, l)
	}
	f.mu.Unlock()

	for _, l := range listeners {
		l(session.Event{Kind: kind, Session: s})
	}
}

func (f *fakeSession) listenerCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.listeners)
}

// harness wires an Engine over in-memory gateways.
type harness struct {
	boards  *memGateway[board.Board]
	tasks   *memGateway[task.Task]
	session *fakeSession
	feed    *app.FailureFeed
	engine  *app.Engine
}

func newHarness(owner string) *harness {
	h := &harness{
		boards:  newBoardGateway(),
		tasks:   newTaskGateway(),
		session: newFakeSession(owner),
		feed:    app.NewFailureFeed(0, discard),
	}
	coord := mutation.NewCoordinator(h.feed, nil, discard)
	h.engine = app.NewEngine(
		app.NewBoardRepository(h.boards, h.tasks, discard),
		app.NewTaskRepository(h.tasks, workflow.Default(), coord, discard),
		h.session,
		coord,
		2,
		discard,
	)
	return h
}

// seedBoard stores a board with n backlog tasks directly in the gateways.
func (h *harness) seedBoard(owner, name string, n int) (board.Board, []task.Task) {
	ctx := context.Background()
	b, _ := h.boards.Insert(ctx, board.Board{Name: name, OwnerID: owner})
	tasks := make([]task.Task, 0, n)
	for i := range n {
		t, _ := h.tasks.Insert(ctx, task.Task{
			BoardID: b.ID,
			OwnerID: owner,
			Title:   fmt.Sprintf("task %d", i+1),
			Status:  workflow.StageBacklog,
		})
		tasks = append(tasks, t)
	}
	return b, tasks
}

func taskIDs(tasks []task.Task) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

func boardIDs(boards []board.Board) []string {
	ids := make([]string, len(boards))
	for i, b := range boards {
		ids[i] = b.ID
	}
	return ids
}
