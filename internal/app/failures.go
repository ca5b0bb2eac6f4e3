package app

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/jsamuelsen11/kanban-engine/internal/domain"
	"github.com/jsamuelsen11/kanban-engine/internal/platform/logging"
	"github.com/jsamuelsen11/kanban-engine/internal/ports"
)

// DefaultFailureBacklog bounds how many undrained failures are kept.
const DefaultFailureBacklog = 100

var (
	_ ports.FailureNotifier = (*FailureFeed)(nil)
	_ ports.FailureFeed     = (*FailureFeed)(nil)
)

// FailureFeed buffers rollback failures until the rendering layer drains
// them. When full, the oldest failure is dropped.
type FailureFeed struct {
	mu      sync.Mutex
	items   []domain.Failure
	backlog int
	logger  *slog.Logger
}

// NewFailureFeed creates a feed holding at most backlog failures. A
// non-positive backlog uses DefaultFailureBacklog.
func NewFailureFeed(backlog int, logger *slog.Logger) *FailureFeed {
	if backlog <= 0 {
		backlog = DefaultFailureBacklog
	}
	return &FailureFeed{backlog: backlog, logger: logger}
}

// Notify records a failure.
func (f *FailureFeed) Notify(ctx context.Context, failure domain.Failure) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.items) == f.backlog {
		dropped := f.items[0]
		f.items = f.items[1:]
		f.logger.WarnContext(ctx, "failure backlog full, dropping oldest",
			slog.String("operation", dropped.Operation),
			logging.Entity(dropped.EntityID),
		)
	}
	f.items = append(f.items, failure)
}

// Acknowledge removes a failure the caller has already reported by other
// means.
func (f *FailureFeed) Acknowledge(id uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := slices.IndexFunc(f.items, func(x domain.Failure) bool { return x.ID == id })
	if i < 0 {
		return false
	}
	f.items = slices.Delete(f.items, i, i+1)
	return true
}

// Drain returns all buffered failures, oldest first, and empties the feed.
// The result is never nil.
func (f *FailureFeed) Drain() []domain.Failure {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := f.items
	f.items = nil
	if out == nil {
		out = []domain.Failure{}
	}
	return out
}
