package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/kanban-engine/internal/platform/httpclient"
)

// tablePrefix is where PostgREST serves tables.
const tablePrefix = "/rest/v1/"

// Requester centralizes the HTTP request lifecycle for the store tables:
// request creation, JSON marshaling, execution via httpclient.Client,
// response body cleanup, status validation, error translation and JSON
// decoding.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Do executes method against a table. Writes ask the store to return the
// affected rows, which are decoded into respBody when non-nil. Any 2xx
// status is success; everything else goes through TranslateHTTPError.
func (r *Requester) Do(ctx context.Context, method, table string, query url.Values, reqBody, respBody any) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("select", "*")
	target := r.client.BaseURL() + tablePrefix + table + "?" + query.Encode()

	body := io.Reader(http.NoBody)
	if reqBody != nil {
		raw, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshaling %s body for %s: %w", method, table, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("creating %s request for %s: %w", method, table, err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("Prefer", "return=representation")
	}

	return r.execute(req, respBody)
}

// closeBody closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

func success(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// execute sends the request, checks the status code, and optionally decodes
// the response body. It ensures resp.Body is always closed.
func (r *Requester) execute(req *http.Request, respBody any) error {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// httpclient.Do returns both resp and err when retries are exhausted
		// on a retryable status; the response carries the better error.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			if !success(resp.StatusCode) {
				return TranslateHTTPError(resp)
			}
		}
		r.logger.WarnContext(ctx, "store request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Any("error", err),
		)
		return translateTransportError(fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err))
	}
	defer r.closeBody(ctx, resp)

	if !success(resp.StatusCode) {
		translated := TranslateHTTPError(resp)
		r.logger.WarnContext(ctx, "store refused request",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
			slog.Any("error", translated),
		)
		return translated
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return translateTransportError(fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err))
		}
	}

	return nil
}
