package auth

import (
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/joestump/promptsmith/internal/flow"
)

// Middleware provides HTTP middleware for the password gate.
type Middleware struct {
	sessions *scs.SessionManager
}

// NewMiddleware creates a new auth Middleware.
func NewMiddleware(sm *scs.SessionManager) *Middleware {
	return &Middleware{sessions: sm}
}

// RequireAuth rejects requests whose session has not passed the gate.
// HTMX callers get HX-Redirect to the login page; others a plain redirect.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !flow.Authenticated(LoadState(r.Context(), m.sessions)) {
			if r.Header.Get("HX-Request") == "true" {
				w.Header().Set("HX-Redirect", "/")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
