package task

import (
	"time"

	"github.com/jsamuelsen11/kanban-engine/internal/domain/task"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/workflow"
)

// ToDomain converts a store row to a domain Task. The status is taken as
// stored; checking it against the workflow is the repository's job.
func ToDomain(r Row) task.Task {
	createdAt, _ := time.Parse(time.RFC3339Nano, r.CreatedAt)

	return task.Task{
		ID:        r.ID,
		BoardID:   r.BoardID,
		OwnerID:   r.OwnerID,
		Title:     r.Title,
		Status:    workflow.Stage(r.Status),
		CreatedAt: createdAt,
	}
}

// ToInsert converts an unsaved domain Task to its POST body.
func ToInsert(t task.Task) InsertRow {
	return InsertRow{
		BoardID: t.BoardID,
		OwnerID: t.OwnerID,
		Title:   t.Title,
		Status:  t.Status.String(),
	}
}
