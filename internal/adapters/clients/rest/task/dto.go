// Package task translates between the store's tasks rows and domain tasks.
package task

import "github.com/jsamuelsen11/kanban-engine/internal/ports"

// Row matches a tasks row as returned by the store.
type Row struct {
	ID        string `json:"id"`
	BoardID   string `json:"board_id"`
	OwnerID   string `json:"owner_id"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// InsertRow is the POST body for a new task.
type InsertRow struct {
	BoardID string `json:"board_id"`
	OwnerID string `json:"owner_id"`
	Title   string `json:"title"`
	Status  string `json:"status"`
}

// Patchable lists the tasks columns an update may set.
var Patchable = []string{ports.ColumnStatus, ports.ColumnTitle}
