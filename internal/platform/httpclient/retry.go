package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/kanban-engine/internal/platform/config"
	"github.com/jsamuelsen11/kanban-engine/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// retryPolicy decides whether and when a store request is sent again.
//
// Only requests the store cannot have applied are replayed. Reads and the
// idempotent writes (PATCH of a status, DELETE by filter, PUT) are retried
// on transport errors, 429 and 5xx. An insert (POST) is retried only when
// the store refused it before processing (429, 503), because a replayed
// insert after a 500 could create a second row.
type retryPolicy struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		maxAttempts:     max(cfg.MaxAttempts, 1),
		initialInterval: cfg.InitialInterval,
		maxInterval:     cfg.MaxInterval,
		multiplier:      cfg.Multiplier,
	}
}

// replayable reports whether method may be sent again after the given
// outcome. err is the transport error; status is 0 when err is non-nil.
func (p retryPolicy) replayable(method string, status int, err error) bool {
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false
		}
		return idempotent(method)
	}
	switch {
	case status == http.StatusTooManyRequests, status == http.StatusServiceUnavailable:
		return true
	case status >= http.StatusInternalServerError:
		return idempotent(method)
	default:
		return false
	}
}

// delay returns the wait before the given retry (1 is the first retry).
// A Retry-After header in seconds takes precedence, capped at maxInterval.
func (p retryPolicy) delay(attempt int, resp *http.Response) time.Duration {
	if d, ok := retryAfter(resp); ok {
		return min(d, p.maxInterval)
	}

	d := float64(p.initialInterval) * math.Pow(p.multiplier, float64(attempt-1))
	d = math.Min(d, float64(p.maxInterval))
	d += d * jitterFraction * (2*rand.Float64() - 1)
	return time.Duration(math.Max(d, 0))
}

func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions,
		http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

func retryAfter(resp *http.Response) (time.Duration, bool) {
	if resp == nil {
		return 0, false
	}
	secs, err := strconv.Atoi(resp.Header.Get("Retry-After"))
	if err != nil || secs < 0 {
		return 0, false
	}
	return time.Duration(secs) * time.Second, true
}

// doWithRetry sends req until it succeeds, the policy refuses a replay, or
// maxAttempts is reached. The request body is buffered so every attempt
// sends the same bytes. On a final retryable status the response is
// handed back with its body open alongside the error; the caller closes it.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	body, err := bufferBody(req)
	if err != nil {
		return err
	}

	var (
		lastErr  error
		lastResp *http.Response
	)
	for attempt := range c.retry.maxAttempts {
		if attempt > 0 {
			if err := c.backOff(ctx, req, attempt, lastResp, lastErr); err != nil {
				return err
			}
		}
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		r, err := c.http.Do(req)
		if err != nil {
			lastErr, lastResp = err, nil
			if !c.retry.replayable(req.Method, 0, err) {
				return err
			}
			continue
		}

		if r.StatusCode < http.StatusInternalServerError && r.StatusCode != http.StatusTooManyRequests {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.name)
		if attempt == c.retry.maxAttempts-1 || !c.retry.replayable(req.Method, r.StatusCode, nil) {
			*resp = r
			return lastErr
		}

		// Keep the headers for Retry-After; the body is not needed.
		_, _ = io.Copy(io.Discard, r.Body)
		_ = r.Body.Close()
		lastResp = r
	}

	return lastErr
}

func bufferBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()
	return b, nil
}

func (c *Client) backOff(ctx context.Context, req *http.Request, attempt int, lastResp *http.Response, lastErr error) error {
	wait := c.retry.delay(attempt, lastResp)

	logging.FromContext(ctx).WarnContext(ctx, "retrying store request",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.String("peer_service", c.name),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retry.maxAttempts),
		slog.Duration("backoff", wait),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
