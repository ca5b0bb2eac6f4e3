package httpclient

import (
	"context"
	"net/http"
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores the inbound request ID so store calls made on its
// behalf carry X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID stores the correlation ID forwarded as X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// Option customizes a Client at construction.
type Option func(*Client)

// WithHeader sends name: value on every request. An empty value is ignored,
// which keeps an unset api key out of the request.
func WithHeader(name, value string) Option {
	return func(c *Client) {
		if value != "" {
			c.headers.Set(name, value)
		}
	}
}

// TokenFunc returns the bearer token for the next request.
type TokenFunc func() (string, error)

// WithBearer authorizes every request with the token returned by token.
func WithBearer(token TokenFunc) Option {
	return func(c *Client) {
		c.token = token
	}
}

func (c *Client) injectHeaders(ctx context.Context, req *http.Request) {
	for name, values := range c.headers {
		req.Header[name] = values
	}
	for key, header := range map[any]string{
		requestIDKey{}:     "X-Request-ID",
		correlationIDKey{}: "X-Correlation-ID",
	} {
		if id, _ := ctx.Value(key).(string); id != "" {
			req.Header.Set(header, id)
		}
	}
}
