package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/jsamuelsen11/kanban-engine/internal/domain"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/session"
)

// Problem type URIs. Kinds a client reacts to differently get their own
// type; everything else is about:blank.
const (
	TypeDefault           = "about:blank"
	TypeCascadeIncomplete = "urn:boardd:problem:cascade-incomplete"
	TypeRejected          = "urn:boardd:problem:rejected"
	TypeUnavailable       = "urn:boardd:problem:unavailable"
	TypeNoSession         = "urn:boardd:problem:no-session"
	TypeInvalidToken      = "urn:boardd:problem:invalid-token"
	TypeUnknownStage      = "urn:boardd:problem:unknown-stage"
)

// ErrorResponse represents an RFC 9457 Problem Details response.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail represents a single field-level validation error within
// an ErrorResponse.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// NewErrorResponse creates an RFC 9457 ErrorResponse from a domain error.
// The request is used to populate the instance field with the request URI.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status, typ := classify(err)

	resp := ErrorResponse{
		Type:     typ,
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = validationFieldsToDetails(verr.Fields)
	}

	return resp
}

// WriteErrorResponse writes an RFC 9457 error response for the given domain
// error with Content-Type application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// classify maps error kinds to a status code and problem type. Cascade
// failures are checked before Rejected and Unavailable because they wrap
// the underlying remote error.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrCascadeIncomplete):
		return http.StatusConflict, TypeCascadeIncomplete
	case errors.Is(err, domain.ErrUnknownStage):
		return http.StatusBadRequest, TypeUnknownStage
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, TypeDefault
	case errors.Is(err, session.ErrInvalidToken):
		return http.StatusUnauthorized, TypeInvalidToken
	case errors.Is(err, domain.ErrNoSession):
		return http.StatusUnauthorized, TypeNoSession
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, TypeDefault
	case errors.Is(err, domain.ErrRejected):
		return http.StatusConflict, TypeRejected
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusBadGateway, TypeUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, TypeDefault
	default:
		return http.StatusInternalServerError, TypeDefault
	}
}

// validationFieldsToDetails converts domain validation fields to sorted
// ErrorDetail entries.
func validationFieldsToDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{
			Location: "body." + field,
			Message:  msg,
		})
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].Location < details[j].Location
	})
	return details
}
