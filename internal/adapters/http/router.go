// Package http is the inbound HTTP adapter: routing over the board engine
// and session service plus server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/kanban-engine/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/kanban-engine/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/kanban-engine/internal/ports"
)

// Handlers groups the route handlers the router mounts.
type Handlers struct {
	Session *handlers.SessionHandler
	Board   *handlers.BoardHandler
	Task    *handlers.TaskHandler
	Failure *handlers.FailureHandler
	Health  *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. Board and task routes
// require an active session.
func NewRouter(h Handlers, sessions ports.SessionService, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Put("/session", h.Session.SignIn)
		r.Get("/session", h.Session.Current)
		r.Delete("/session", h.Session.SignOut)
		r.Post("/session/refresh", h.Session.Refresh)

		r.Get("/workflow", h.Board.Workflow)
		r.Get("/failures", h.Failure.ListFailures)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession(sessions))

			r.Get("/boards", h.Board.ListBoards)
			r.Post("/boards", h.Board.CreateBoard)
			r.Get("/boards/{"+handlers.ParamBoardID+"}", h.Board.GetBoard)
			r.Delete("/boards/{"+handlers.ParamBoardID+"}", h.Board.DeleteBoard)
			r.Post("/boards/{"+handlers.ParamBoardID+"}/tasks", h.Task.CreateTask)

			r.Post("/tasks/{"+handlers.ParamTaskID+"}/move", h.Task.MoveTask)
			r.Delete("/tasks/{"+handlers.ParamTaskID+"}", h.Task.DeleteTask)
		})
	})

	return r
}
