// Package mutation implements optimistic local state for the board engine:
// keyed lists with version-guarded restores, the coordinator that applies a
// change locally before its remote write and rolls it back on failure, and
// sequential remote plans.
//
// Usage:
//
//	p, err := mutation.Submit(ctx, coord, mutation.Mutation[task.Task]{
//	    Operation: "move task",
//	    EntityID:  id,
//	    Apply:     func() (func(), error) { ... },
//	    Write:     func(ctx context.Context) (task.Task, error) { ... },
//	})
//	if err != nil {
//	    return err // nothing changed locally
//	}
//	err = p.Wait(ctx) // optional
package mutation

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/kanban-engine/internal/domain"
	"github.com/jsamuelsen11/kanban-engine/internal/platform/logging"
	"github.com/jsamuelsen11/kanban-engine/internal/platform/telemetry"
	"github.com/jsamuelsen11/kanban-engine/internal/ports"
)

const (
	resultSuccess = "success"
	resultFailure = "failure"
)

// Mutation describes one optimistic change.
type Mutation[R any] struct {
	// Operation names the user action for logs, metrics and failures.
	Operation string

	// EntityID identifies the entity being changed.
	EntityID string

	// Apply changes local state and returns a function that undoes exactly
	// that change. It runs synchronously; an error aborts the mutation with
	// no remote write.
	Apply func() (restore func(), err error)

	// Write performs the remote call.
	Write func(ctx context.Context) (R, error)

	// Confirm, if set, reconciles local state with the remote result.
	Confirm func(R)
}

// Coordinator runs optimistic mutations and tracks their remote writes.
type Coordinator struct {
	notifier ports.FailureNotifier
	metrics  *telemetry.Metrics
	logger   *slog.Logger
	inflight sync.WaitGroup
	failures atomic.Uint64
}

// NewCoordinator creates a Coordinator. notifier and metrics may be nil.
func NewCoordinator(notifier ports.FailureNotifier, metrics *telemetry.Metrics, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
	}
}

// Submit applies m locally and starts its remote write in the background.
//
// The write runs with a context that keeps ctx's values but not its
// cancellation, so it always runs to completion. On failure the local change
// is restored before the Pending resolves and before the notifier hears of
// it.
func Submit[R any](ctx context.Context, c *Coordinator, m Mutation[R]) (*Pending, error) {
	restore, err := m.Apply()
	if err != nil {
		return nil, err
	}

	p := newPending()
	wctx := context.WithoutCancel(ctx)

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()

		start := time.Now()
		val, err := m.Write(wctx)
		c.record(wctx, m.Operation, start, err)

		if err != nil {
			if restore != nil {
				restore()
			}
			failure := domain.Failure{ID: c.failures.Add(1), Operation: m.Operation, EntityID: m.EntityID, Err: err}
			level := slog.LevelWarn
			if !domain.IsRemote(err) {
				level = slog.LevelError
			}
			c.logger.Log(wctx, level, "remote write failed, local change rolled back",
				slog.String("operation", m.Operation),
				logging.Entity(m.EntityID),
				slog.Any("error", err),
			)
			if c.notifier != nil {
				c.notifier.Notify(wctx, failure)
			}
			p.resolve(failure)
			return
		}

		if m.Confirm != nil {
			m.Confirm(val)
		}
		p.resolve(nil)
	}()

	return p, nil
}

// Wait blocks until every submitted write has settled.
func (c *Coordinator) Wait() {
	c.inflight.Wait()
}

func (c *Coordinator) record(ctx context.Context, operation string, start time.Time, err error) {
	if c.metrics == nil {
		return
	}

	result := resultSuccess
	if err != nil {
		result = resultFailure
	}

	attrs := metric.WithAttributes(
		telemetry.AttrOperation.String(operation),
		telemetry.AttrResult.String(result),
	)
	c.metrics.MutationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.MutationTotal.Add(ctx, 1, attrs)
}
