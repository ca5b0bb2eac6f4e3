// Package workflow defines the ordered sequence of stages a task moves
// through and the adjacency rules for moving between them.
package workflow

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/kanban-engine/internal/domain"
)

// Stage identifies one column of the workflow (e.g. "backlog").
type Stage string

// String implements fmt.Stringer.
func (s Stage) String() string {
	return string(s)
}

// Default stage identifiers.
const (
	StageBacklog Stage = "backlog"
	StageTodo    Stage = "todo"
	StageReview  Stage = "review"
	StageDone    Stage = "done"
)

// Direction selects the neighbor returned by Definition.Adjacent.
type Direction int

// Direction values are the index offset applied by Adjacent.
const (
	Backward Direction = -1
	Forward  Direction = 1
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a user-supplied direction name. "next" and
// "prev"/"previous" are accepted as aliases.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forward", "next":
		return Forward, nil
	case "backward", "prev", "previous":
		return Backward, nil
	default:
		return 0, &domain.ValidationError{
			Fields: map[string]string{"direction": fmt.Sprintf("must be forward or backward, got %q", s)},
		}
	}
}

// minStages is the smallest workflow that allows a move.
const minStages = 2

// Definition is an immutable ordered list of distinct stages. The zero value
// is not usable; construct with New or Default.
type Definition struct {
	stages []Stage
	index  map[Stage]int
}

// New builds a Definition from at least two distinct, non-empty stages.
func New(stages ...Stage) (Definition, error) {
	if len(stages) < minStages {
		return Definition{}, &domain.ValidationError{
			Fields: map[string]string{"stages": fmt.Sprintf("need at least %d, got %d", minStages, len(stages))},
		}
	}

	index := make(map[Stage]int, len(stages))
	for i, s := range stages {
		if strings.TrimSpace(string(s)) == "" {
			return Definition{}, &domain.ValidationError{
				Fields: map[string]string{fmt.Sprintf("stages[%d]", i): domain.MsgRequired},
			}
		}
		if _, dup := index[s]; dup {
			return Definition{}, &domain.ValidationError{
				Fields: map[string]string{fmt.Sprintf("stages[%d]", i): fmt.Sprintf("duplicate stage %q", s)},
			}
		}
		index[s] = i
	}

	return Definition{
		stages: append([]Stage(nil), stages...),
		index:  index,
	}, nil
}

// Default returns backlog → todo → review → done.
func Default() Definition {
	d, _ := New(StageBacklog, StageTodo, StageReview, StageDone)
	return d
}

// Parse builds a Definition from plain strings, as read from configuration.
func Parse(names []string) (Definition, error) {
	stages := make([]Stage, len(names))
	for i, n := range names {
		stages[i] = Stage(strings.TrimSpace(n))
	}
	return New(stages...)
}

// Stages returns a copy of the ordered stage list.
func (d Definition) Stages() []Stage {
	return append([]Stage(nil), d.stages...)
}

// Len returns the number of stages.
func (d Definition) Len() int {
	return len(d.stages)
}

// First returns the stage at index 0.
func (d Definition) First() Stage {
	return d.stages[0]
}

// Last returns the stage at index N-1.
func (d Definition) Last() Stage {
	return d.stages[len(d.stages)-1]
}

// Contains reports whether stage belongs to the definition.
func (d Definition) Contains(stage Stage) bool {
	_, ok := d.index[stage]
	return ok
}

// IndexOf returns the position of stage, or ErrUnknownStage.
func (d Definition) IndexOf(stage Stage) (int, error) {
	i, ok := d.index[stage]
	if !ok {
		return -1, fmt.Errorf("%w: %q", domain.ErrUnknownStage, stage)
	}
	return i, nil
}

// Adjacent returns the neighbor of stage in the given direction. Moving
// past either end saturates: the same stage is returned and no error is
// reported, so callers compare the result with stage to detect "no move".
func (d Definition) Adjacent(stage Stage, dir Direction) (Stage, error) {
	i, err := d.IndexOf(stage)
	if err != nil {
		return stage, err
	}
	if dir != Forward && dir != Backward {
		return stage, &domain.ValidationError{
			Fields: map[string]string{"direction": fmt.Sprintf("invalid: %d", int(dir))},
		}
	}

	next := i + int(dir)
	if next < 0 || next >= len(d.stages) {
		return stage, nil
	}
	return d.stages[next], nil
}
