// Package httpclient is the outbound transport for the hosted REST store.
//
// Every call passes, in order, through the circuit breaker, the rate
// limiter, header injection (apikey, bearer token, request and correlation
// IDs, W3C trace context), a client span and the retry policy:
//
//	client := httpclient.New(&cfg.Client, "rest-store", metrics, logger,
//		httpclient.WithHeader("apikey", cfg.Client.APIKey),
//		httpclient.WithBearer(sessions.AccessToken),
//	)
//	resp, err := client.Do(ctx, req)
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/kanban-engine/internal/platform/config"
	"github.com/jsamuelsen11/kanban-engine/internal/platform/telemetry"
)

// Breaker states reported by HealthCheck.
var (
	ErrDegraded = errors.New("degraded (circuit breaker half-open)")
	ErrFailing  = errors.New("failing (circuit breaker open)")
)

// Client sends store requests. It satisfies ports.HealthChecker through
// Name and HealthCheck.
type Client struct {
	http    *http.Client
	baseURL string
	name    string
	breaker *gobreaker.CircuitBreaker[struct{}]
	limiter *rate.Limiter // nil: unlimited
	headers http.Header
	token   TokenFunc // nil: no Authorization header
	retry   retryPolicy
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New builds a client for the store named name. metrics may be nil.
func New(
	cfg *config.ClientConfig,
	name string,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
	opts ...Option,
) *Client {
	c := &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		name:    name,
		breaker: newBreaker(name, cfg.CircuitBreaker, logger),
		headers: make(http.Header),
		retry:   newRetryPolicy(cfg.Retry),
		metrics: metrics,
		logger:  logger,
	}
	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// newBreaker trips after MaxFailures consecutive failures. A caller giving
// up (canceled context) says nothing about the store and is not counted.
func newBreaker(name string, cfg config.CircuitBreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker[struct{}] {
	return gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("store circuit breaker changed state",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// Do sends req. A failing token source returns its error before anything
// else runs, so a signed-out engine never trips the breaker.
//
// On success resp has an open body. When the retry budget runs out on a
// retryable status both resp and err are set and the caller still closes
// resp.Body. Breaker rejections and transport errors leave resp nil.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.token != nil {
		token, err := c.token()
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return struct{}{}, err
			}
		}
		c.injectHeaders(ctx, req)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		req = req.WithContext(spanCtx)
		err := c.doWithRetry(spanCtx, req, &resp)
		finishSpan(span, resp, err)
		return struct{}{}, err
	})

	c.record(ctx, req.Method, time.Since(start), resp, err)
	return resp, err
}

// BaseURL is the store root every request path is joined to.
func (c *Client) BaseURL() string { return c.baseURL }

// Name identifies the store in traces, metrics and readiness output.
func (c *Client) Name() string { return c.name }

// HealthCheck maps the breaker state to readiness without a network call.
func (c *Client) HealthCheck(context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: %w", c.name, ErrDegraded)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: %w", c.name, ErrFailing)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.name, state)
	}
}

func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	return uint32(min(uint64(v), math.MaxUint32))
}
