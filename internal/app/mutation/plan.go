package mutation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/kanban-engine/internal/domain"
	"github.com/jsamuelsen11/kanban-engine/internal/platform/logging"
)

// ErrAlreadyCommitted is returned when a Plan is committed twice or an
// action is added after Commit.
var ErrAlreadyCommitted = errors.New("mutation: plan already committed")

// Step adapts a pair of functions to domain.Action. Undo may be nil for
// steps whose remote effect cannot be reversed.
type Step struct {
	Name string
	Do   func(ctx context.Context) error
	Undo func(ctx context.Context) error
}

func (s Step) Execute(ctx context.Context) error { return s.Do(ctx) }

func (s Step) Rollback(ctx context.Context) error {
	if s.Undo == nil {
		return nil
	}
	return s.Undo(ctx)
}

func (s Step) Description() string { return s.Name }

// StepError reports which step of a Plan failed. Index is zero-based.
type StepError struct {
	Index  int
	Action string
	Err    error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("executing %s: %v", e.Action, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Plan is an ordered list of remote steps executed one after another.
// Steps after a failed step are not attempted; steps completed before it
// are rolled back in reverse order.
type Plan struct {
	mu        sync.Mutex
	name      string
	actions   []domain.Action
	committed bool
}

// NewPlan creates an empty plan. The name appears in log records.
func NewPlan(name string) *Plan {
	return &Plan{name: name}
}

// Add appends an action to the plan.
func (p *Plan) Add(action domain.Action) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.committed {
		return ErrAlreadyCommitted
	}
	p.actions = append(p.actions, action)
	return nil
}

// Commit executes all actions in insertion order. On failure it returns a
// *StepError identifying the failed step. Rollback errors are logged but do
// not affect the returned error.
//
// Commit may be called once; later calls return ErrAlreadyCommitted.
func (p *Plan) Commit(ctx context.Context) error {
	p.mu.Lock()
	if p.committed {
		p.mu.Unlock()
		return ErrAlreadyCommitted
	}
	p.committed = true
	// No goroutine can append once committed is set.
	actions := p.actions
	p.mu.Unlock()

	logger := logging.FromContext(ctx)

	for i, action := range actions {
		logger.DebugContext(ctx, "executing step",
			slog.String("operation", p.name),
			slog.Int("step", i+1),
			slog.Int("total", len(actions)),
			slog.String("action", action.Description()),
		)

		if err := action.Execute(ctx); err != nil {
			logger.ErrorContext(ctx, "step failed, rolling back",
				slog.String("operation", p.name),
				slog.Int("failed_step", i+1),
				slog.String("action", action.Description()),
				slog.Any("error", err),
			)
			p.rollback(ctx, actions, i-1, logger)
			return &StepError{Index: i, Action: action.Description(), Err: err}
		}
	}

	return nil
}

// rollback rolls back actions 0..upTo (inclusive) in reverse order.
func (p *Plan) rollback(ctx context.Context, actions []domain.Action, upTo int, logger *slog.Logger) {
	for i := upTo; i >= 0; i-- {
		action := actions[i]

		if err := action.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.String("operation", p.name),
				slog.Int("step", i+1),
				slog.String("action", action.Description()),
				slog.Any("error", err),
			)
		}
	}
}
