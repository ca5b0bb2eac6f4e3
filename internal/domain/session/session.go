// Package session defines the identity a board engine acts on behalf of and
// the lifecycle events that invalidate identity-scoped state.
package session

import (
	"errors"
	"time"
)

// ErrInvalidToken rejects an access token that fails verification, has
// expired, or names a different identity than the one being refreshed.
var ErrInvalidToken = errors.New("invalid access token")

// Session is an authenticated identity. OwnerID scopes every write.
type Session struct {
	OwnerID     string
	AccessToken string
	ExpiresAt   time.Time
}

// Expired reports whether the session's token has expired at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// EventKind classifies a session change.
type EventKind string

const (
	SignedIn       EventKind = "signed_in"
	SignedOut      EventKind = "signed_out"
	TokenRefreshed EventKind = "token_refreshed"
	Expired        EventKind = "expired"
)

// Event is delivered to session listeners. Session is nil when the event
// leaves no active identity (sign-out, expiry).
type Event struct {
	Kind    EventKind
	Session *Session
}
