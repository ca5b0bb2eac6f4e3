// Package sqlite implements the store gateways on an embedded SQLite
// database. It serves local and single-user deployments with the same
// semantics as the hosted REST store: store-assigned ids and creation
// times, explicit cascades, and failures that wrap domain.ErrRejected or
// domain.ErrUnavailable.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jsamuelsen11/kanban-engine/internal/domain"
	"github.com/jsamuelsen11/kanban-engine/internal/ports"
)

//go:embed schema.sql
var schemaSQL string

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// ServiceName identifies the store in health results.
const ServiceName = "sqlite"

var _ ports.HealthChecker = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the wall clock used for created_at.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Store owns the database handle shared by the table gateways.
type Store struct {
	db  *sql.DB
	now func() time.Time

	mu   sync.Mutex
	last time.Time
}

// Open opens (or creates) the database at path and applies the schema.
// Foreign keys are enforced on every connection.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	// One connection serializes writers and keeps an in-memory database
	// alive for the life of the pool.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("applying schema: %w (close error: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.resumeClock(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("%w (close error: %v)", err, closeErr)
		}
		return nil, err
	}
	return s, nil
}

// resumeClock starts stamp after the newest stored row, so rows created
// after a restart sort after existing ones even if the clock went back.
func (s *Store) resumeClock(ctx context.Context) error {
	var us int64
	err := s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(created_at), 0) FROM (
		SELECT created_at FROM boards UNION ALL SELECT created_at FROM tasks)`).Scan(&us)
	if err != nil {
		return fmt.Errorf("reading newest creation time: %w", err)
	}
	if us > 0 {
		s.last = time.UnixMicro(us).UTC()
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return ServiceName
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: %w", ServiceName, err)
	}
	return nil
}

// stamp returns a fresh row id and a creation time strictly after every
// previously issued one, so insertion order equals creation order even
// when the wall clock stalls or steps back.
func (s *Store) stamp() (string, time.Time, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("generating id: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC().Truncate(time.Microsecond)
	if !now.After(s.last) {
		now = s.last.Add(time.Microsecond)
	}
	s.last = now
	return id.String(), now, nil
}

// translate maps a database error to the gateway's failure kinds.
// Constraint violations are refusals; everything else means the store
// could not serve the request.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var se *sqlite.Error
	if errors.As(err, &se) && se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		return fmt.Errorf("%w: %w", domain.ErrRejected, err)
	}
	return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
}
