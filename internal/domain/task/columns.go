package task

import "github.com/jsamuelsen11/kanban-engine/internal/domain/workflow"

// Column is one workflow stage with the tasks currently in it.
type Column struct {
	Stage workflow.Stage
	Tasks []Task
}

// Columns is a board's tasks grouped by stage, in workflow order.
type Columns []Column

// GroupByStage splits tasks into one column per stage of def. Every stage
// gets a column, even when empty. Tasks keep their relative order, so an
// input in creation order yields columns in creation order. Tasks whose
// status is not part of def are left out.
func GroupByStage(def workflow.Definition, tasks []Task) Columns {
	stages := def.Stages()
	cols := make(Columns, len(stages))
	pos := make(map[workflow.Stage]int, len(stages))
	for i, s := range stages {
		cols[i] = Column{Stage: s, Tasks: []Task{}}
		pos[s] = i
	}

	for _, t := range tasks {
		if i, ok := pos[t.Status]; ok {
			cols[i].Tasks = append(cols[i].Tasks, t)
		}
	}
	return cols
}

// Stage returns the tasks of a single stage, or nil if the stage is absent.
func (c Columns) Stage(s workflow.Stage) []Task {
	for _, col := range c {
		if col.Stage == s {
			return col.Tasks
		}
	}
	return nil
}

// Count returns the number of tasks across all columns.
func (c Columns) Count() int {
	n := 0
	for _, col := range c {
		n += len(col.Tasks)
	}
	return n
}
