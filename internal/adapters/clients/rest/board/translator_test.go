package board

import (
	"testing"
	"time"

	domboard "github.com/jsamuelsen11/kanban-engine/internal/domain/board"
)

func TestToDomain_FieldMapping(t *testing.T) {
	t.Parallel()

	got := ToDomain(Row{
		ID:        "b-1",
		Name:      "Launch",
		OwnerID:   "user-1",
		CreatedAt: "2026-02-12T15:04:05.123456+00:00",
	})

	if got.ID != "b-1" {
		t.Errorf("ID = %q, want %q", got.ID, "b-1")
	}
	if got.Name != "Launch" {
		t.Errorf("Name = %q, want %q", got.Name, "Launch")
	}
	if got.OwnerID != "user-1" {
		t.Errorf("OwnerID = %q, want %q", got.OwnerID, "user-1")
	}
	want := time.Date(2026, 2, 12, 15, 4, 5, 123456000, time.UTC)
	if !got.CreatedAt.Equal(want) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, want)
	}
}

func TestToDomain_MalformedTimestamp(t *testing.T) {
	t.Parallel()

	got := ToDomain(Row{ID: "b-1", CreatedAt: "yesterday"})
	if !got.CreatedAt.IsZero() {
		t.Errorf("CreatedAt = %v, want zero time", got.CreatedAt)
	}
}

func TestToInsert_OmitsStoreAssignedFields(t *testing.T) {
	t.Parallel()

	got := ToInsert(domboard.Board{ID: "ignored", Name: "Launch", OwnerID: "user-1"})

	want := InsertRow{Name: "Launch", OwnerID: "user-1"}
	if got != want {
		t.Errorf("ToInsert() = %+v, want %+v", got, want)
	}
}
