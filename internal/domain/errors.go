package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"

// Error kinds for errors.Is() checking.
var (
	// ErrInvalidInput rejects user input (empty name or title) before any
	// remote call is made or any local state is touched.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownStage signals a stage outside the workflow definition. It is
	// a programming error and is returned before any mutation.
	ErrUnknownStage = errors.New("unknown stage")

	// ErrRejected means the remote store refused the write (constraint
	// violation, missing row, malformed request).
	ErrRejected = errors.New("remote rejected")

	// ErrUnavailable means the remote store could not be reached or refused
	// the caller's credentials.
	ErrUnavailable = errors.New("remote unavailable")

	// ErrCascadeIncomplete means a board delete stopped because its tasks
	// could not be deleted. The board still fully exists.
	ErrCascadeIncomplete = errors.New("cascade incomplete")

	// ErrNotFound reports an entity missing from local state or the store.
	ErrNotFound = errors.New("not found")

	// ErrNoSession means an operation needs an identity and none is active.
	ErrNoSession = errors.New("no active session")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrInvalidInput) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrInvalidInput.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// Required returns a ValidationError for a single missing field.
func Required(field string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: MsgRequired}}
}

// IsRemote reports whether err is one of the remote failure kinds that an
// optimistic mutation recovers from by rolling back.
func IsRemote(err error) bool {
	return errors.Is(err, ErrRejected) || errors.Is(err, ErrUnavailable)
}
