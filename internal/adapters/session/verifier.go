// Package session implements the identity boundary: it verifies access
// tokens, holds the active session, expires it on time, and announces every
// change to the engine. An optional Redis relay spreads sign-outs across
// instances.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/MicahParks/keyfunc"
	"github.com/golang-jwt/jwt/v4"

	"github.com/jsamuelsen11/kanban-engine/internal/domain/session"
)

// DefaultJWKSRefresh is how often the key set is re-fetched.
const DefaultJWKSRefresh = time.Hour

// VerifierOption configures a Verifier.
type VerifierOption func(*Verifier)

// WithAudience requires the aud claim to contain aud.
func WithAudience(aud string) VerifierOption {
	return func(v *Verifier) { v.audience = aud }
}

// WithIssuer requires the iss claim to equal iss.
func WithIssuer(iss string) VerifierOption {
	return func(v *Verifier) { v.issuer = iss }
}

// WithLeeway tolerates clock skew on exp, nbf and iat.
func WithLeeway(d time.Duration) VerifierOption {
	return func(v *Verifier) { v.leeway = d }
}

// WithVerifierClock replaces the clock used for time-based claims.
func WithVerifierClock(now func() time.Time) VerifierOption {
	return func(v *Verifier) { v.now = now }
}

// Verifier checks access tokens and turns them into sessions.
type Verifier struct {
	parser   *jwt.Parser
	keyFunc  jwt.Keyfunc
	jwks     *keyfunc.JWKS // nil for shared-secret verification
	audience string
	issuer   string
	leeway   time.Duration
	now      func() time.Time
}

func newVerifier(method string, kf jwt.Keyfunc, opts []VerifierOption) *Verifier {
	v := &Verifier{
		// Time-based claims are checked in Verify so the leeway applies.
		parser:  jwt.NewParser(jwt.WithValidMethods([]string{method}), jwt.WithoutClaimsValidation()),
		keyFunc: kf,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewHS256Verifier verifies tokens signed with a shared secret.
func NewHS256Verifier(secret []byte, opts ...VerifierOption) (*Verifier, error) {
	if len(secret) == 0 {
		return nil, errors.New("session: empty jwt secret")
	}
	return newVerifier(jwt.SigningMethodHS256.Alg(), func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	}, opts), nil
}

// NewJWKSVerifier verifies RS256 tokens against the key set at url. Keys
// are refreshed in the background until ctx is done or Close is called.
func NewJWKSVerifier(ctx context.Context, url string, logger *slog.Logger, opts ...VerifierOption) (*Verifier, error) {
	jwks, err := keyfunc.Get(url, keyfunc.Options{
		Ctx:               ctx,
		RefreshInterval:   DefaultJWKSRefresh,
		RefreshUnknownKID: true,
		RefreshErrorHandler: func(err error) {
			logger.WarnContext(ctx, "refreshing JWKS failed",
				slog.String("jwks_url", url),
				slog.Any("error", err),
			)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("fetching JWKS from %s: %w", url, err)
	}

	v := newVerifier(jwt.SigningMethodRS256.Alg(), jwks.Keyfunc, opts)
	v.jwks = jwks
	return v, nil
}

// Close stops the background key refresh.
func (v *Verifier) Close() {
	if v.jwks != nil {
		v.jwks.EndBackground()
	}
}

// Verify parses and validates token. exp and sub are required; nbf and iat
// are checked when present; aud and iss when configured. Every failure
// wraps session.ErrInvalidToken.
func (v *Verifier) Verify(token string) (session.Session, error) {
	parsed, err := v.parser.Parse(token, v.keyFunc)
	if err != nil {
		return session.Session{}, fmt.Errorf("%w: %w", session.ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return session.Session{}, fmt.Errorf("%w: unexpected claims type", session.ErrInvalidToken)
	}

	now := v.now()
	switch {
	case !claims.VerifyExpiresAt(now.Add(-v.leeway).Unix(), true):
		return session.Session{}, fmt.Errorf("%w: token expired", session.ErrInvalidToken)
	case !claims.VerifyNotBefore(now.Add(v.leeway).Unix(), false):
		return session.Session{}, fmt.Errorf("%w: token not valid yet", session.ErrInvalidToken)
	case !claims.VerifyIssuedAt(now.Add(v.leeway).Unix(), false):
		return session.Session{}, fmt.Errorf("%w: token used before issued", session.ErrInvalidToken)
	case v.audience != "" && !claims.VerifyAudience(v.audience, true):
		return session.Session{}, fmt.Errorf("%w: invalid audience", session.ErrInvalidToken)
	case v.issuer != "" && !claims.VerifyIssuer(v.issuer, true):
		return session.Session{}, fmt.Errorf("%w: invalid issuer", session.ErrInvalidToken)
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return session.Session{}, fmt.Errorf("%w: missing sub", session.ErrInvalidToken)
	}

	return session.Session{
		OwnerID:     sub,
		AccessToken: token,
		ExpiresAt:   expiry(claims),
	}, nil
}

// expiry reads the exp claim, already known to be present.
func expiry(claims jwt.MapClaims) time.Time {
	switch exp := claims["exp"].(type) {
	case float64:
		return time.Unix(int64(exp), 0)
	case int64:
		return time.Unix(exp, 0)
	default:
		return time.Time{}
	}
}
