package rest

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/kanban-engine/internal/adapters/clients/rest/board"
	"github.com/jsamuelsen11/kanban-engine/internal/adapters/clients/rest/task"
	domainboard "github.com/jsamuelsen11/kanban-engine/internal/domain/board"
	domaintask "github.com/jsamuelsen11/kanban-engine/internal/domain/task"
	"github.com/jsamuelsen11/kanban-engine/internal/platform/httpclient"
	"github.com/jsamuelsen11/kanban-engine/internal/ports"
)

// Table names on the hosted store.
const (
	BoardsTable = "boards"
	TasksTable  = "tasks"
)

// ServiceName identifies the store in traces, metrics and health results.
const ServiceName = "store-api"

// Compile-time interface checks.
var (
	_ ports.Gateway[domainboard.Board] = (*Table[domainboard.Board, board.Row])(nil)
	_ ports.Gateway[domaintask.Task]   = (*Table[domaintask.Task, task.Row])(nil)
	_ ports.HealthChecker              = (*Client)(nil)
)

// Client is the outbound adapter for the hosted store. It hands out one
// [Table] gateway per entity kind, all sharing the underlying
// [httpclient.Client] and therefore its circuit breaker, rate limiter and
// credentials.
type Client struct {
	http   *httpclient.Client
	req    *Requester
	logger *slog.Logger
}

// NewClient creates a Client that sends requests through the given
// [httpclient.Client]. The client's BaseURL should point at the store root
// (e.g. "https://xyz.example.co"); table paths are appended below
// /rest/v1/. The client should carry the apikey header and bearer token
// options.
func NewClient(client *httpclient.Client, logger *slog.Logger) *Client {
	return &Client{
		http:   client,
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// Boards returns the gateway for the boards table.
func (c *Client) Boards() *Table[domainboard.Board, board.Row] {
	return NewTable(c.req, BoardsTable, Codec[domainboard.Board, board.Row]{
		ToDomain:  board.ToDomain,
		ToInsert:  func(b domainboard.Board) any { return board.ToInsert(b) },
		Patchable: board.Patchable,
	})
}

// Tasks returns the gateway for the tasks table.
func (c *Client) Tasks() *Table[domaintask.Task, task.Row] {
	return NewTable(c.req, TasksTable, Codec[domaintask.Task, task.Row]{
		ToDomain:  task.ToDomain,
		ToInsert:  func(t domaintask.Task) any { return task.ToInsert(t) },
		Patchable: task.Patchable,
	})
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *Client) Name() string {
	return ServiceName
}

// HealthCheck reports the store's availability from the circuit breaker
// state. No network call is made: tying readiness to a live probe would keep
// the breaker from ever recovering.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.http.HealthCheck(ctx)
}
