package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen11/kanban-engine/internal/domain"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/session"
	"github.com/jsamuelsen11/kanban-engine/internal/platform/logging"
	"github.com/jsamuelsen11/kanban-engine/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.SessionBoundary = (*Provider)(nil)
	_ ports.SessionService  = (*Provider)(nil)
	_ ports.TokenSource     = (*Provider)(nil)
)

// TokenVerifier turns an access token into a session.
type TokenVerifier interface {
	Verify(token string) (session.Session, error)
}

// Relay carries session changes between instances.
type Relay interface {
	Publish(ctx context.Context, msg RelayMessage) error
	// Subscribe delivers messages from other instances until ctx is done.
	Subscribe(ctx context.Context, deliver func(RelayMessage)) error
}

// Option configures a Provider.
type Option func(*Provider)

// WithRelay shares sign-outs and refreshes with other instances.
func WithRelay(r Relay) Option {
	return func(p *Provider) { p.relay = r }
}

// WithClock replaces the clock used for expiry.
func WithClock(now func() time.Time) Option {
	return func(p *Provider) { p.now = now }
}

// Provider holds the active session. It implements
// [ports.SessionBoundary] for the engine, [ports.SessionService] for the
// HTTP layer and [ports.TokenSource] for the REST store client.
//
// Changes are applied and announced one at a time, so listeners observe
// them in the order they happened.
type Provider struct {
	verifier TokenVerifier
	relay    Relay
	logger   *slog.Logger
	now      func() time.Time

	// changeMu serializes state changes together with their announcement.
	changeMu sync.Mutex

	mu        sync.Mutex
	current   *session.Session
	timer     *time.Timer
	epoch     uint64
	listeners map[uint64]func(session.Event)
	nextID    uint64
}

// NewProvider creates a signed-out Provider.
func NewProvider(verifier TokenVerifier, logger *slog.Logger, opts ...Option) *Provider {
	p := &Provider{
		verifier:  verifier,
		logger:    logger,
		now:       time.Now,
		listeners: make(map[uint64]func(session.Event)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SignIn verifies accessToken and makes it the active session, replacing
// any previous one.
func (p *Provider) SignIn(ctx context.Context, accessToken string) (session.Session, error) {
	s, err := p.verify(accessToken)
	if err != nil {
		return session.Session{}, err
	}

	p.change(session.SignedIn, &s)
	p.logger.InfoContext(ctx, "signed in", logging.Owner(s.OwnerID))
	return s, nil
}

// Refresh replaces the active session's token. The new token must belong
// to the same owner.
func (p *Provider) Refresh(ctx context.Context, accessToken string) (session.Session, error) {
	cur, ok := p.CurrentSession()
	if !ok {
		return session.Session{}, fmt.Errorf("refreshing token: %w", domain.ErrNoSession)
	}

	s, err := p.verify(accessToken)
	if err != nil {
		return session.Session{}, err
	}
	if s.OwnerID != cur.OwnerID {
		return session.Session{}, fmt.Errorf("%w: token belongs to a different identity", session.ErrInvalidToken)
	}

	p.change(session.TokenRefreshed, &s)
	p.publish(ctx, session.TokenRefreshed, s.OwnerID)
	return s, nil
}

// SignOut ends the active session. Signing out while signed out is a no-op.
func (p *Provider) SignOut(ctx context.Context) error {
	cur, ok := p.CurrentSession()
	if !ok {
		return nil
	}

	p.change(session.SignedOut, nil)
	p.logger.InfoContext(ctx, "signed out", logging.Owner(cur.OwnerID))
	p.publish(ctx, session.SignedOut, cur.OwnerID)
	return nil
}

// CurrentSession returns the active session, or false when signed out or
// when the session has expired.
func (p *Provider) CurrentSession() (session.Session, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil || p.current.Expired(p.now()) {
		return session.Session{}, false
	}
	return *p.current, true
}

// AccessToken returns the active session's token for outbound requests.
func (p *Provider) AccessToken() (string, error) {
	s, ok := p.CurrentSession()
	if !ok {
		return "", domain.ErrNoSession
	}
	return s.AccessToken, nil
}

// OnSessionChange registers listener for every later change.
func (p *Provider) OnSessionChange(listener func(session.Event)) ports.Subscription {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	p.listeners[id] = listener

	var once sync.Once
	return subscription(func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			delete(p.listeners, id)
		})
	})
}

// Listen applies remote session changes from the relay until ctx is done.
// Without a relay it returns immediately.
func (p *Provider) Listen(ctx context.Context) error {
	if p.relay == nil {
		return nil
	}
	return p.relay.Subscribe(ctx, func(msg RelayMessage) {
		p.applyRemote(ctx, msg)
	})
}

// applyRemote ends the local session when another instance signed the
// same owner out.
func (p *Provider) applyRemote(ctx context.Context, msg RelayMessage) {
	if msg.Kind != session.SignedOut {
		return
	}
	cur, ok := p.CurrentSession()
	if !ok || cur.OwnerID != msg.OwnerID {
		return
	}

	p.logger.InfoContext(ctx, "signed out by another instance", logging.Owner(msg.OwnerID))
	p.change(session.SignedOut, nil)
}

func (p *Provider) verify(token string) (session.Session, error) {
	s, err := p.verifier.Verify(token)
	if err != nil {
		return session.Session{}, err
	}
	if s.Expired(p.now()) {
		return session.Session{}, fmt.Errorf("%w: token expired", session.ErrInvalidToken)
	}
	return s, nil
}

// change installs s (nil to clear), re-arms the expiry timer and notifies
// listeners.
func (p *Provider) change(kind session.EventKind, s *session.Session) {
	p.changeMu.Lock()
	defer p.changeMu.Unlock()
	p.changeLocked(kind, s)
}

func (p *Provider) changeLocked(kind session.EventKind, s *session.Session) {
	p.mu.Lock()
	p.epoch++
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.current = s
	if s != nil && !s.ExpiresAt.IsZero() {
		epoch := p.epoch
		p.timer = time.AfterFunc(s.ExpiresAt.Sub(p.now()), func() { p.expire(epoch) })
	}
	listeners := make([]func(session.Event), 0, len(p.listeners))
	for _, l := range p.listeners {
		listeners = append(listeners, l)
	}
	p.mu.Unlock()

	ev := session.Event{Kind: kind}
	if s != nil {
		copied := *s
		ev.Session = &copied
	}
	for _, l := range listeners {
		l(ev)
	}
}

// expire clears the session installed at epoch if nothing replaced it.
func (p *Provider) expire(epoch uint64) {
	p.changeMu.Lock()
	defer p.changeMu.Unlock()

	p.mu.Lock()
	stale := p.epoch != epoch || p.current == nil
	p.mu.Unlock()
	if stale {
		return
	}

	p.logger.Info("session expired")
	p.changeLocked(session.Expired, nil)
}

func (p *Provider) publish(ctx context.Context, kind session.EventKind, ownerID string) {
	if p.relay == nil {
		return
	}
	if err := p.relay.Publish(ctx, RelayMessage{Kind: kind, OwnerID: ownerID}); err != nil {
		p.logger.WarnContext(ctx, "publishing session change failed",
			slog.String("event", string(kind)),
			slog.Any("error", err),
		)
	}
}

type subscription func()

func (s subscription) Unsubscribe() { s() }
