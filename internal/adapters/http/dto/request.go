package dto

import (
	"strings"

	"github.com/jsamuelsen11/kanban-engine/internal/domain"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/workflow"
)

// SignInRequest hands an access token to the engine. Used for both sign-in
// and refresh.
type SignInRequest struct {
	AccessToken string `json:"access_token"`
}

// Validate checks that the token is present.
func (r *SignInRequest) Validate() error {
	if strings.TrimSpace(r.AccessToken) == "" {
		return domain.Required("access_token")
	}
	return nil
}

// CreateBoardRequest represents the JSON body for creating a board.
type CreateBoardRequest struct {
	Name string `json:"name"`
}

// Validate checks that the name is not blank.
func (r *CreateBoardRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return domain.Required("name")
	}
	return nil
}

// CreateTaskRequest represents the JSON body for creating a task. An empty
// stage means the first stage of the workflow.
type CreateTaskRequest struct {
	Title string `json:"title"`
	Stage string `json:"stage,omitempty"`
}

// Validate checks that the title is not blank. Stage membership is checked
// by the engine against the active workflow.
func (r *CreateTaskRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return domain.Required("title")
	}
	return nil
}

// MoveTaskRequest represents the JSON body for moving a task one stage.
type MoveTaskRequest struct {
	Direction string `json:"direction"`

	dir workflow.Direction
}

// Validate parses the direction.
func (r *MoveTaskRequest) Validate() error {
	dir, err := workflow.ParseDirection(r.Direction)
	if err != nil {
		return err
	}
	r.dir = dir
	return nil
}

// Dir returns the direction parsed by Validate.
func (r *MoveTaskRequest) Dir() workflow.Direction {
	return r.dir
}
