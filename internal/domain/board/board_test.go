package board

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/kanban-engine/internal/domain"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		owner     string
		boardName string
		wantName  string
		wantField string
	}{
		{name: "valid board", owner: "user-1", boardName: "Launch", wantName: "Launch"},
		{name: "name is trimmed", owner: "user-1", boardName: "  Launch \n", wantName: "Launch"},
		{name: "empty name fails", owner: "user-1", boardName: "", wantField: "name"},
		{name: "whitespace-only name fails", owner: "user-1", boardName: "   ", wantField: "name"},
		{name: "missing owner fails", owner: "", boardName: "Launch", wantField: "owner_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := New(tt.owner, tt.boardName)
			if tt.wantField != "" {
				var verr *domain.ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("New() error = %v, want *ValidationError", err)
				}
				if _, ok := verr.Fields[tt.wantField]; !ok {
					t.Errorf("ValidationError.Fields = %v, missing %q", verr.Fields, tt.wantField)
				}
				if !errors.Is(err, domain.ErrInvalidInput) {
					t.Errorf("errors.Is(err, ErrInvalidInput) = false")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v, want nil", err)
			}
			if b.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", b.Name, tt.wantName)
			}
			if b.OwnerID != tt.owner {
				t.Errorf("OwnerID = %q, want %q", b.OwnerID, tt.owner)
			}
		})
	}
}
