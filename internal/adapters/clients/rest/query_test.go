package rest

import (
	"testing"

	"github.com/jsamuelsen11/kanban-engine/internal/ports"
)

func TestEncodeQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		filter ports.Filter
		order  ports.Order
		want   string
	}{
		{
			name: "empty",
			want: "",
		},
		{
			name:   "equality filter",
			filter: ports.Eq(ports.ColumnOwnerID, "user-1"),
			want:   "owner_id=eq.user-1",
		},
		{
			name:   "filters sorted by column",
			filter: ports.Filter{ports.ColumnStatus: "todo", ports.ColumnBoardID: "b-1"},
			want:   "board_id=eq.b-1&status=eq.todo",
		},
		{
			name:  "order keys",
			order: ports.Order{ports.Desc(ports.ColumnCreatedAt), ports.Desc(ports.ColumnID)},
			want:  "order=created_at.desc%2Cid.desc",
		},
		{
			name:   "filter and ascending order",
			filter: ports.Eq(ports.ColumnBoardID, "b-1"),
			order:  ports.Order{ports.Asc(ports.ColumnCreatedAt), ports.Asc(ports.ColumnID)},
			want:   "board_id=eq.b-1&order=created_at.asc%2Cid.asc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := encodeQuery(tt.filter, tt.order).Encode(); got != tt.want {
				t.Errorf("encodeQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}
