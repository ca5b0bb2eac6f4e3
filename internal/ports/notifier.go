package ports

import (
	"context"

	"github.com/jsamuelsen11/kanban-engine/internal/domain"
)

// FailureNotifier receives one signal per optimistic mutation that was
// rolled back after its remote write failed. The delivery channel to the
// user (toast, banner, log) is the implementation's concern.
type FailureNotifier interface {
	Notify(ctx context.Context, failure domain.Failure)
}
