// Package task defines the Task entity and its grouping into workflow
// columns.
package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/kanban-engine/internal/domain"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/workflow"
)

// Task is a unit of work on a board. Status is the only field that changes
// after creation.
type Task struct {
	ID        string
	BoardID   string
	OwnerID   string
	Title     string
	Status    workflow.Stage
	CreatedAt time.Time
}

// New returns an unsaved Task with its title trimmed. The stage must belong
// to def; an unknown stage is reported as domain.ErrUnknownStage, all other
// failures as a *domain.ValidationError.
func New(def workflow.Definition, ownerID, boardID, title string, stage workflow.Stage) (Task, error) {
	t := Task{
		BoardID: boardID,
		OwnerID: ownerID,
		Title:   strings.TrimSpace(title),
		Status:  stage,
	}
	if err := t.Validate(); err != nil {
		return Task{}, err
	}
	if !def.Contains(stage) {
		return Task{}, fmt.Errorf("%w: %q", domain.ErrUnknownStage, stage)
	}
	return t, nil
}

// Validate checks business rules for the Task entity.
// Returns a *domain.ValidationError (wrapping domain.ErrInvalidInput) with
// per-field details, or nil if all rules pass.
func (t *Task) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if strings.TrimSpace(t.BoardID) == "" {
		fields["board_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(t.OwnerID) == "" {
		fields["owner_id"] = domain.MsgRequired
	}
	if t.Status == "" {
		fields["status"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Key returns the task's identifier.
func (t Task) Key() string {
	return t.ID
}

// Move describes a stage change of one task. From equals To when the task
// already sat at the end of the workflow in the requested direction.
type Move struct {
	Task Task
	From workflow.Stage
	To   workflow.Stage
}

// Moved reports whether the move changed the task's stage.
func (m Move) Moved() bool {
	return m.From != m.To
}
