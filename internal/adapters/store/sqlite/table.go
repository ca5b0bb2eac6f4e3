package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/kanban-engine/internal/domain"
	"github.com/jsamuelsen11/kanban-engine/internal/ports"
)

// scanner is the subset of *sql.Row and *sql.Rows used by row codecs.
type scanner interface {
	Scan(dest ...any) error
}

// schema describes one table for the generic gateway.
type schema[T any] struct {
	name string
	// columns in SELECT and INSERT order; id and created_at come first.
	columns   []string
	patchable []string
	scan      func(scanner) (T, error)
	// values returns the non-assigned column values in columns[2:] order.
	values func(T) []any
}

// Table is a [ports.Gateway] over one SQLite table.
type Table[T any] struct {
	store  *Store
	schema schema[T]
}

func (t *Table[T]) selectList() string {
	return strings.Join(t.schema.columns, ", ")
}

func (t *Table[T]) known(col string) bool {
	return slices.Contains(t.schema.columns, col)
}

// where renders filter as an AND of equalities over known columns.
func (t *Table[T]) where(filter ports.Filter) (string, []any, error) {
	if len(filter) == 0 {
		return "", nil, nil
	}
	cols := filter.Columns()
	clauses := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		if !t.known(col) {
			return "", nil, fmt.Errorf("%s: unknown column %q: %w", t.schema.name, col, domain.ErrRejected)
		}
		clauses[i] = col + " = ?"
		args[i] = filter[col]
	}
	return " WHERE " + strings.Join(clauses, " AND "), args, nil
}

func (t *Table[T]) orderBy(order ports.Order) (string, error) {
	if len(order) == 0 {
		return "", nil
	}
	keys := make([]string, len(order))
	for i, s := range order {
		if !t.known(s.Column) {
			return "", fmt.Errorf("%s: unknown column %q: %w", t.schema.name, s.Column, domain.ErrRejected)
		}
		keys[i] = s.Column
		if s.Descending {
			keys[i] += " DESC"
		}
	}
	return " ORDER BY " + strings.Join(keys, ", "), nil
}

// List returns matching rows in the given order.
func (t *Table[T]) List(ctx context.Context, filter ports.Filter, order ports.Order) ([]T, error) {
	where, args, err := t.where(filter)
	if err != nil {
		return nil, err
	}
	orderBy, err := t.orderBy(order)
	if err != nil {
		return nil, err
	}

	query := "SELECT " + t.selectList() + " FROM " + t.schema.name + where + orderBy
	rows, err := t.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", t.schema.name, translate(err))
	}
	defer func() { _ = rows.Close() }()

	out := []T{}
	for rows.Next() {
		v, err := t.schema.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", t.schema.name, translate(err))
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing %s: %w", t.schema.name, translate(err))
	}
	return out, nil
}

// Insert stores row with a fresh id and creation time and returns it.
func (t *Table[T]) Insert(ctx context.Context, row T) (T, error) {
	var zero T

	id, createdAt, err := t.store.stamp()
	if err != nil {
		return zero, fmt.Errorf("inserting into %s: %w", t.schema.name, translate(err))
	}

	args := append([]any{id, createdAt.UnixMicro()}, t.schema.values(row)...)
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(args)), ", ")
	query := "INSERT INTO " + t.schema.name + " (" + t.selectList() + ") VALUES (" + placeholders +
		") RETURNING " + t.selectList()

	v, err := t.schema.scan(t.store.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return zero, fmt.Errorf("inserting into %s: %w", t.schema.name, translate(err))
	}
	return v, nil
}

// Update applies patch to the row with the given id.
func (t *Table[T]) Update(ctx context.Context, id string, patch ports.Patch) (T, error) {
	var zero T

	if len(patch) == 0 {
		return zero, fmt.Errorf("updating %s %s: empty patch: %w", t.schema.name, id, domain.ErrRejected)
	}
	cols := make([]string, 0, len(patch))
	for col := range patch {
		if !slices.Contains(t.schema.patchable, col) {
			return zero, fmt.Errorf("updating %s %s: column %q is not writable: %w",
				t.schema.name, id, col, domain.ErrRejected)
		}
		cols = append(cols, col)
	}
	slices.Sort(cols)

	sets := make([]string, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, col := range cols {
		sets[i] = col + " = ?"
		args = append(args, fmt.Sprint(patch[col]))
	}
	args = append(args, id)

	query := "UPDATE " + t.schema.name + " SET " + strings.Join(sets, ", ") +
		" WHERE id = ? RETURNING " + t.selectList()

	v, err := t.schema.scan(t.store.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return zero, fmt.Errorf("updating %s %s: %w: %w", t.schema.name, id, domain.ErrRejected, domain.ErrNotFound)
	}
	if err != nil {
		return zero, fmt.Errorf("updating %s %s: %w", t.schema.name, id, translate(err))
	}
	return v, nil
}

// Delete removes matching rows and returns how many were removed.
func (t *Table[T]) Delete(ctx context.Context, filter ports.Filter) (int, error) {
	if len(filter) == 0 {
		return 0, fmt.Errorf("deleting from %s: refusing unfiltered delete: %w", t.schema.name, domain.ErrRejected)
	}
	where, args, err := t.where(filter)
	if err != nil {
		return 0, err
	}

	res, err := t.store.db.ExecContext(ctx, "DELETE FROM "+t.schema.name+where, args...)
	if err != nil {
		return 0, fmt.Errorf("deleting from %s: %w", t.schema.name, translate(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("deleting from %s: %w", t.schema.name, translate(err))
	}
	return int(n), nil
}

func fromMicros(us int64) time.Time {
	return time.UnixMicro(us).UTC()
}
