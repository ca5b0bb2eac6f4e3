// Package board translates between the store's boards rows and domain
// boards.
package board

import "github.com/jsamuelsen11/kanban-engine/internal/ports"

// Row matches a boards row as returned by the store.
type Row struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	OwnerID   string `json:"owner_id"`
	CreatedAt string `json:"created_at"`
}

// InsertRow is the POST body for a new board. id and created_at are
// assigned by the store.
type InsertRow struct {
	Name    string `json:"name"`
	OwnerID string `json:"owner_id"`
}

// Patchable lists the boards columns an update may set.
var Patchable = []string{ports.ColumnName}
