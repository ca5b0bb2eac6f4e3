// Package rest implements the store gateways against a PostgREST-style
// hosted API. Row translators live in subpackages (rest/board, rest/task);
// the shared request lifecycle, query encoding and error mapping live here.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/kanban-engine/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// apiError is the error body PostgREST returns for failed requests.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

// TranslateHTTPError maps a failed store response to a domain error.
//
//	400, 404, 409, 422 and other 4xx -> domain.ErrRejected
//	401, 403, 5xx                    -> domain.ErrUnavailable
//
// A 404 additionally wraps domain.ErrNotFound.
func TranslateHTTPError(resp *http.Response) error {
	ae := parseAPIError(resp)

	detail := ae.Message
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}
	if ae.Code != "" {
		detail = ae.Code + " " + detail
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w: %w", detail, domain.ErrRejected, domain.ErrNotFound)

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	case resp.StatusCode >= http.StatusBadRequest:
		return fmt.Errorf("%s: %w", detail, domain.ErrRejected)

	default:
		return fmt.Errorf("unexpected status %d: %s: %w", resp.StatusCode, detail, domain.ErrUnavailable)
	}
}

// translateTransportError maps a failure that produced no response:
// missing credentials, network errors, an open circuit breaker or an
// expired deadline. All of them mean the store could not be reached.
func translateTransportError(err error) error {
	if errors.Is(err, domain.ErrUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
}

// parseAPIError reads a JSON error body from the response. Returns an empty
// apiError if the body is absent or not JSON.
func parseAPIError(resp *http.Response) apiError {
	if resp.Body == nil {
		return apiError{}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.Contains(ct, "json") {
		return apiError{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return apiError{}
	}

	var ae apiError
	if err := json.Unmarshal(body, &ae); err != nil {
		return apiError{}
	}
	return ae
}
