package sqlite

import (
	"github.com/jsamuelsen11/kanban-engine/internal/domain/board"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/task"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/workflow"
	"github.com/jsamuelsen11/kanban-engine/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Gateway[board.Board] = (*Table[board.Board])(nil)
	_ ports.Gateway[task.Task]   = (*Table[task.Task])(nil)
)

// Boards returns the gateway for the boards table.
func (s *Store) Boards() *Table[board.Board] {
	return &Table[board.Board]{store: s, schema: schema[board.Board]{
		name: "boards",
		columns: []string{
			ports.ColumnID, ports.ColumnCreatedAt, ports.ColumnName, ports.ColumnOwnerID,
		},
		patchable: []string{ports.ColumnName},
		scan: func(sc scanner) (board.Board, error) {
			var (
				b  board.Board
				us int64
			)
			if err := sc.Scan(&b.ID, &us, &b.Name, &b.OwnerID); err != nil {
				return board.Board{}, err
			}
			b.CreatedAt = fromMicros(us)
			return b, nil
		},
		values: func(b board.Board) []any {
			return []any{b.Name, b.OwnerID}
		},
	}}
}

// Tasks returns the gateway for the tasks table.
func (s *Store) Tasks() *Table[task.Task] {
	return &Table[task.Task]{store: s, schema: schema[task.Task]{
		name: "tasks",
		columns: []string{
			ports.ColumnID, ports.ColumnCreatedAt, ports.ColumnBoardID, ports.ColumnOwnerID,
			ports.ColumnTitle, ports.ColumnStatus,
		},
		patchable: []string{ports.ColumnStatus, ports.ColumnTitle},
		scan: func(sc scanner) (task.Task, error) {
			var (
				t      task.Task
				us     int64
				status string
			)
			if err := sc.Scan(&t.ID, &us, &t.BoardID, &t.OwnerID, &t.Title, &status); err != nil {
				return task.Task{}, err
			}
			t.CreatedAt = fromMicros(us)
			t.Status = workflow.Stage(status)
			return t, nil
		},
		values: func(t task.Task) []any {
			return []any{t.BoardID, t.OwnerID, t.Title, t.Status.String()}
		},
	}}
}
