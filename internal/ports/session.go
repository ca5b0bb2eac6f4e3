package ports

import (
	"context"

	"github.com/jsamuelsen11/kanban-engine/internal/domain/session"
)

// Subscription is a registered session listener. Unsubscribe is idempotent.
type Subscription interface {
	Unsubscribe()
}

// SessionBoundary supplies the identity that owns all writes and announces
// its lifecycle. Implemented by the session adapter; consumed by the engine.
type SessionBoundary interface {
	// CurrentSession returns the active session, or false when signed out.
	CurrentSession() (session.Session, bool)

	// OnSessionChange registers listener for every subsequent session
	// change. Listeners run synchronously on the goroutine that caused the
	// change and must not block.
	OnSessionChange(listener func(session.Event)) Subscription

	// SignOut ends the active session and notifies listeners.
	SignOut(ctx context.Context) error
}

// TokenSource yields the bearer token attached to outbound store requests.
type TokenSource interface {
	// AccessToken returns the active session's token or an error wrapping
	// domain.ErrNoSession.
	AccessToken() (string, error)
}
