package board

import (
	"time"

	"github.com/jsamuelsen11/kanban-engine/internal/domain/board"
)

// ToDomain converts a store row to a domain Board. A malformed timestamp
// yields the zero time.
func ToDomain(r Row) board.Board {
	createdAt, _ := time.Parse(time.RFC3339Nano, r.CreatedAt)

	return board.Board{
		ID:        r.ID,
		Name:      r.Name,
		OwnerID:   r.OwnerID,
		CreatedAt: createdAt,
	}
}

// ToInsert converts an unsaved domain Board to its POST body.
func ToInsert(b board.Board) InsertRow {
	return InsertRow{
		Name:    b.Name,
		OwnerID: b.OwnerID,
	}
}
