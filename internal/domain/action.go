package domain

import "context"

// Action represents a single remote step with rollback capability.
// Implementations should be idempotent where possible; the engine never
// retries them on its own.
//
// Action is defined in the domain layer so that repositories can describe
// multi-step remote work without depending on the application layer.
type Action interface {
	// Execute performs the step. The context carries deadline signals and
	// request-scoped values (logger, session token).
	Execute(ctx context.Context) error

	// Rollback reverses the effect of a previously successful Execute call.
	// Rollback is only called if Execute returned nil. Steps whose remote
	// effect cannot be undone return nil and leave recovery to the caller.
	Rollback(ctx context.Context) error

	// Description returns a human-readable description of the step for
	// logging purposes (e.g., "delete tasks of board 42").
	Description() string
}

// Failure is the signal emitted for every optimistic mutation whose remote
// write failed and whose local effect was rolled back.
type Failure struct {
	// ID is assigned by the coordinator that ran the write, starting at 1.
	ID uint64

	// Operation names the user action, e.g. "move task" or "delete task".
	Operation string

	// EntityID identifies the entity whose local state was restored.
	EntityID string

	// Err is the remote error; errors.Is(Err, ErrRejected) or
	// errors.Is(Err, ErrUnavailable) distinguishes the kind.
	Err error
}

func (f Failure) Error() string {
	return f.Operation + " " + f.EntityID + ": " + f.Err.Error()
}

func (f Failure) Unwrap() error {
	return f.Err
}
