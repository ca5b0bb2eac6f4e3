package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/kanban-engine/internal/domain"
	"github.com/jsamuelsen11/kanban-engine/internal/ports"
)

// Codec translates between a domain entity T and its wire row R.
type Codec[T, R any] struct {
	ToDomain func(R) T
	// ToInsert builds the POST body for a new row. Store-assigned columns
	// (id, created_at) must be left out.
	ToInsert func(T) any
	// Patchable lists the columns an Update may set.
	Patchable []string
}

// Table is a [ports.Gateway] over one PostgREST table.
type Table[T, R any] struct {
	name  string
	req   *Requester
	codec Codec[T, R]
}

// NewTable binds a table name to its codec.
func NewTable[T, R any](req *Requester, name string, codec Codec[T, R]) *Table[T, R] {
	return &Table[T, R]{name: name, req: req, codec: codec}
}

// List fetches rows with GET /rest/v1/{table}.
func (t *Table[T, R]) List(ctx context.Context, filter ports.Filter, order ports.Order) ([]T, error) {
	var rows []R
	if err := t.req.Do(ctx, http.MethodGet, t.name, encodeQuery(filter, order), nil, &rows); err != nil {
		return nil, fmt.Errorf("listing %s: %w", t.name, err)
	}
	return t.toDomain(rows), nil
}

// Insert creates a row with POST and returns the stored representation.
func (t *Table[T, R]) Insert(ctx context.Context, row T) (T, error) {
	var zero T

	var rows []R
	if err := t.req.Do(ctx, http.MethodPost, t.name, nil, t.codec.ToInsert(row), &rows); err != nil {
		return zero, fmt.Errorf("inserting into %s: %w", t.name, err)
	}
	if len(rows) == 0 {
		return zero, fmt.Errorf("inserting into %s: no row returned: %w", t.name, domain.ErrRejected)
	}
	return t.codec.ToDomain(rows[0]), nil
}

// Update patches the row with the given id. PostgREST answers an update of
// a missing row with an empty array, which maps to ErrNotFound.
func (t *Table[T, R]) Update(ctx context.Context, id string, patch ports.Patch) (T, error) {
	var zero T

	if len(patch) == 0 {
		return zero, fmt.Errorf("updating %s %s: empty patch: %w", t.name, id, domain.ErrRejected)
	}
	for col := range patch {
		if !slices.Contains(t.codec.Patchable, col) {
			return zero, fmt.Errorf("updating %s %s: column %q is not writable: %w", t.name, id, col, domain.ErrRejected)
		}
	}

	var rows []R
	query := encodeQuery(ports.Eq(ports.ColumnID, id), nil)
	if err := t.req.Do(ctx, http.MethodPatch, t.name, query, map[string]any(patch), &rows); err != nil {
		return zero, fmt.Errorf("updating %s %s: %w", t.name, id, err)
	}
	if len(rows) == 0 {
		return zero, fmt.Errorf("updating %s %s: %w: %w", t.name, id, domain.ErrRejected, domain.ErrNotFound)
	}
	return t.codec.ToDomain(rows[0]), nil
}

// Delete removes matching rows and reports how many the store returned.
func (t *Table[T, R]) Delete(ctx context.Context, filter ports.Filter) (int, error) {
	if len(filter) == 0 {
		return 0, fmt.Errorf("deleting from %s: refusing unfiltered delete: %w", t.name, domain.ErrRejected)
	}

	var rows []json.RawMessage
	if err := t.req.Do(ctx, http.MethodDelete, t.name, encodeQuery(filter, nil), nil, &rows); err != nil {
		return 0, fmt.Errorf("deleting from %s: %w", t.name, err)
	}
	return len(rows), nil
}

func (t *Table[T, R]) toDomain(rows []R) []T {
	out := make([]T, len(rows))
	for i, r := range rows {
		out[i] = t.codec.ToDomain(r)
	}
	return out
}
