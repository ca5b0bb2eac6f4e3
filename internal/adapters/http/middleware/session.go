package middleware

import (
	"net/http"

	"github.com/jsamuelsen11/kanban-engine/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-engine/internal/domain"
	"github.com/jsamuelsen11/kanban-engine/internal/platform/logging"
	"github.com/jsamuelsen11/kanban-engine/internal/ports"
)

// RequireSession answers 401 when no session is active and otherwise adds
// the owner to the request logger.
func RequireSession(sessions ports.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok := sessions.CurrentSession()
			if !ok {
				dto.WriteErrorResponse(w, r, domain.ErrNoSession)
				return
			}
			next.ServeHTTP(w, r.WithContext(logging.With(r.Context(), logging.Owner(s.OwnerID))))
		})
	}
}
