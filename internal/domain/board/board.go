// Package board defines the Board entity: a named, owner-scoped container
// of tasks.
package board

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/kanban-engine/internal/domain"
)

// Board is a named workflow board owned by exactly one identity.
// ID and CreatedAt are assigned by the persistence layer on insert.
type Board struct {
	ID        string
	Name      string
	OwnerID   string
	CreatedAt time.Time
}

// New returns an unsaved Board with its name trimmed, validated.
func New(ownerID, name string) (Board, error) {
	b := Board{
		Name:    strings.TrimSpace(name),
		OwnerID: ownerID,
	}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// Validate checks business rules for the Board entity.
// Returns a *domain.ValidationError (wrapping domain.ErrInvalidInput) with
// per-field details, or nil if all rules pass.
func (b *Board) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(b.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if strings.TrimSpace(b.OwnerID) == "" {
		fields["owner_id"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Key returns the board's identifier.
func (b Board) Key() string {
	return b.ID
}
