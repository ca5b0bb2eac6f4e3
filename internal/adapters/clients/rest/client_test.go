package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/kanban-engine/internal/domain"
	domainboard "github.com/jsamuelsen11/kanban-engine/internal/domain/board"
	domaintask "github.com/jsamuelsen11/kanban-engine/internal/domain/task"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/workflow"
	"github.com/jsamuelsen11/kanban-engine/internal/platform/config"
	"github.com/jsamuelsen11/kanban-engine/internal/platform/httpclient"
	"github.com/jsamuelsen11/kanban-engine/internal/ports"
)

const testAPIKey = "anon-key"

// newTestClient creates a store Client pointing at baseURL with the circuit
// breaker and retry configured for fast tests. token may be nil.
func newTestClient(t *testing.T, baseURL string, token httpclient.TokenFunc) *Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
	if token == nil {
		token = func() (string, error) { return "access-1", nil }
	}
	logger := slog.New(slog.DiscardHandler)

	hc := httpclient.New(cfg, ServiceName, nil, logger,
		httpclient.WithHeader("apikey", testAPIKey),
		httpclient.WithBearer(token),
	)
	return NewClient(hc, logger)
}

// writeJSON encodes v as JSON to the response writer, failing the test on error.
func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("failed to encode response: %v", err)
	}
}

func TestBoards_List(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/rest/v1/boards" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		q := r.URL.Query()
		if got := q.Get("owner_id"); got != "eq.user-1" {
			t.Errorf("owner_id = %q, want %q", got, "eq.user-1")
		}
		if got := q.Get("order"); got != "created_at.desc,id.desc" {
			t.Errorf("order = %q, want %q", got, "created_at.desc,id.desc")
		}
		if got := q.Get("select"); got != "*" {
			t.Errorf("select = %q, want *", got)
		}
		if got := r.Header.Get("apikey"); got != testAPIKey {
			t.Errorf("apikey = %q, want %q", got, testAPIKey)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer access-1" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		writeJSON(t, w, http.StatusOK, []map[string]any{
			{"id": "b-2", "name": "Second", "owner_id": "user-1", "created_at": "2026-02-12T15:05:00Z"},
			{"id": "b-1", "name": "First", "owner_id": "user-1", "created_at": "2026-02-12T15:04:00Z"},
		})
	}))
	defer ts.Close()

	boards := newTestClient(t, ts.URL, nil).Boards()
	got, err := boards.List(context.Background(),
		ports.Eq(ports.ColumnOwnerID, "user-1"),
		ports.Order{ports.Desc(ports.ColumnCreatedAt), ports.Desc(ports.ColumnID)},
	)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 2 || got[0].ID != "b-2" || got[1].Name != "First" {
		t.Errorf("List() = %+v, want rows in store order", got)
	}
}

func TestTasks_Insert(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/rest/v1/tasks" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Prefer"); got != "return=representation" {
			t.Errorf("Prefer = %q, want return=representation", got)
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if _, ok := body["id"]; ok {
			t.Error("insert body carries id, want store-assigned")
		}
		if body["status"] != "todo" || body["title"] != "Ship" {
			t.Errorf("body = %v, want status todo and title Ship", body)
		}

		writeJSON(t, w, http.StatusCreated, []map[string]any{{
			"id": "t-1", "board_id": "b-1", "owner_id": "user-1",
			"title": "Ship", "status": "todo", "created_at": "2026-02-12T15:04:05Z",
		}})
	}))
	defer ts.Close()

	tasks := newTestClient(t, ts.URL, nil).Tasks()
	got, err := tasks.Insert(context.Background(), domaintask.Task{
		BoardID: "b-1", OwnerID: "user-1", Title: "Ship", Status: workflow.StageTodo,
	})
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if got.ID != "t-1" || got.CreatedAt.IsZero() {
		t.Errorf("Insert() = %+v, want store-assigned id and created_at", got)
	}
}

func TestTasks_Update(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s, want PATCH", r.Method)
		}
		if got := r.URL.Query().Get("id"); got != "eq.t-1" {
			t.Errorf("id = %q, want eq.t-1", got)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"status":"review"}` {
			t.Errorf("body = %s, want status patch", body)
		}
		writeJSON(t, w, http.StatusOK, []map[string]any{{
			"id": "t-1", "board_id": "b-1", "owner_id": "user-1",
			"title": "Ship", "status": "review", "created_at": "2026-02-12T15:04:05Z",
		}})
	}))
	defer ts.Close()

	tasks := newTestClient(t, ts.URL, nil).Tasks()
	got, err := tasks.Update(context.Background(), "t-1", ports.Patch{ports.ColumnStatus: "review"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got.Status != workflow.StageReview {
		t.Errorf("Status = %q, want review", got.Status)
	}
}

func TestTasks_UpdateMissingRow(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, []any{})
	}))
	defer ts.Close()

	tasks := newTestClient(t, ts.URL, nil).Tasks()
	_, err := tasks.Update(context.Background(), "gone", ports.Patch{ports.ColumnStatus: "done"})
	if !errors.Is(err, domain.ErrNotFound) || !errors.Is(err, domain.ErrRejected) {
		t.Errorf("Update() error = %v, want ErrNotFound and ErrRejected", err)
	}
}

func TestTable_RefusedBeforeNetwork(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL, nil)

	tests := []struct {
		name string
		call func() error
	}{
		{"unfiltered delete", func() error {
			_, err := client.Tasks().Delete(context.Background(), ports.Filter{})
			return err
		}},
		{"empty patch", func() error {
			_, err := client.Tasks().Update(context.Background(), "t-1", ports.Patch{})
			return err
		}},
		{"read-only column", func() error {
			_, err := client.Tasks().Update(context.Background(), "t-1", ports.Patch{ports.ColumnOwnerID: "x"})
			return err
		}},
		{"board status", func() error {
			_, err := client.Boards().Update(context.Background(), "b-1", ports.Patch{ports.ColumnStatus: "done"})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, domain.ErrRejected) {
				t.Errorf("error = %v, want ErrRejected", err)
			}
		})
	}

	if n := calls.Load(); n != 0 {
		t.Errorf("server calls = %d, want 0", n)
	}
}

func TestTasks_DeleteCountsReturnedRows(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		if got := r.URL.Query().Get("board_id"); got != "eq.b-1" {
			t.Errorf("board_id = %q, want eq.b-1", got)
		}
		writeJSON(t, w, http.StatusOK, []map[string]any{{"id": "t-1"}, {"id": "t-2"}, {"id": "t-3"}})
	}))
	defer ts.Close()

	n, err := newTestClient(t, ts.URL, nil).Tasks().Delete(context.Background(), ports.Eq(ports.ColumnBoardID, "b-1"))
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if n != 3 {
		t.Errorf("Delete() = %d, want 3", n)
	}
}

func TestTable_StatusErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status  int
		wantErr error
	}{
		{http.StatusBadRequest, domain.ErrRejected},
		{http.StatusConflict, domain.ErrRejected},
		{http.StatusUnprocessableEntity, domain.ErrRejected},
		{http.StatusUnauthorized, domain.ErrUnavailable},
		{http.StatusForbidden, domain.ErrUnavailable},
		{http.StatusInternalServerError, domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			t.Parallel()

			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(t, w, tt.status, map[string]any{"message": "nope"})
			}))
			defer ts.Close()

			_, err := newTestClient(t, ts.URL, nil).Boards().Insert(context.Background(),
				domainboard.Board{Name: "x", OwnerID: "user-1"})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Insert() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTable_NoSessionSkipsNetwork(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	noSession := func() (string, error) { return "", domain.ErrNoSession }
	_, err := newTestClient(t, ts.URL, noSession).Boards().List(context.Background(), nil, nil)

	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("List() error = %v, want ErrUnavailable", err)
	}
	if !errors.Is(err, domain.ErrNoSession) {
		t.Errorf("List() error = %v, want cause ErrNoSession", err)
	}
	if n := calls.Load(); n != 0 {
		t.Errorf("server calls = %d, want 0", n)
	}
}

func TestTable_NetworkFailure(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := ts.URL
	ts.Close()

	_, err := newTestClient(t, url, nil).Tasks().List(context.Background(), nil, nil)
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("List() error = %v, want ErrUnavailable", err)
	}
}

func TestClient_HealthCheck(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "http://localhost", nil)

	if client.Name() != ServiceName {
		t.Errorf("Name() = %q, want %q", client.Name(), ServiceName)
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil for a fresh breaker", err)
	}
}
