package ports

import (
	"context"
	"sort"
)

// Column names of the persisted records, shared by the repositories and the
// store adapters.
const (
	ColumnID        = "id"
	ColumnName      = "name"
	ColumnTitle     = "title"
	ColumnOwnerID   = "owner_id"
	ColumnBoardID   = "board_id"
	ColumnStatus    = "status"
	ColumnCreatedAt = "created_at"
)

// Filter selects rows by column equality. All pairs must match.
type Filter map[string]string

// Eq returns a single-column equality filter.
func Eq(column, value string) Filter {
	return Filter{column: value}
}

// Columns returns the filter's column names in a stable order.
func (f Filter) Columns() []string {
	cols := make([]string, 0, len(f))
	for c := range f {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}

// Sort orders rows by one column.
type Sort struct {
	Column     string
	Descending bool
}

// Order is a list of sort keys, most significant first.
type Order []Sort

// Asc returns an ascending sort key.
func Asc(column string) Sort {
	return Sort{Column: column}
}

// Desc returns a descending sort key.
func Desc(column string) Sort {
	return Sort{Column: column, Descending: true}
}

// Patch is a partial update keyed by column name.
type Patch map[string]any

// Gateway is the client port for one entity kind of the remote store.
// Implemented by store adapters (REST, SQLite); called by the repositories.
//
// Every method may suspend on I/O and none retries on its own. Failures
// wrap domain.ErrRejected (the store refused the request) or
// domain.ErrUnavailable (transport or credential failure).
type Gateway[T any] interface {
	// List returns rows matching filter in the given order.
	List(ctx context.Context, filter Filter, order Order) ([]T, error)

	// Insert creates a row and returns it with store-assigned fields
	// (ID, CreatedAt) populated.
	Insert(ctx context.Context, row T) (T, error)

	// Update applies patch to the row with the given id and returns the
	// updated row. A missing row wraps domain.ErrNotFound and
	// domain.ErrRejected.
	Update(ctx context.Context, id string, patch Patch) (T, error)

	// Delete removes rows matching filter and returns how many were
	// removed. Zero matches is not an error. An empty filter is refused.
	Delete(ctx context.Context, filter Filter) (int, error)
}
