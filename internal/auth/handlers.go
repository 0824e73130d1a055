package auth

import (
	"log"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/joestump/promptsmith/internal/flow"
)

// Handlers provides the browser login and logout endpoints.
type Handlers struct {
	gate     *Gate
	sessions *scs.SessionManager
}

// NewHandlers creates a new Handlers with the given dependencies.
func NewHandlers(g *Gate, sm *scs.SessionManager) *Handlers {
	return &Handlers{gate: g, sessions: sm}
}

// Login handles POST /ui/login. The outcome is stored in the session and the
// browser is sent back to / either way; the login page shows the error.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	current := LoadState(r.Context(), h.sessions)
	if flow.Authenticated(current) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	gateErr := h.gate.Check(r.PostFormValue("password"))
	next, err := flow.Login(current, gateErr, Message(gateErr))
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if gateErr == nil {
		// New token on privilege change.
		if err := h.sessions.RenewToken(r.Context()); err != nil {
			http.Error(w, "session error", http.StatusInternalServerError)
			return
		}
	} else if !h.gate.Configured() {
		log.Printf("auth: login rejected: %v (set APP_PASSWORD)", gateErr)
	}
	SaveState(r.Context(), h.sessions, next)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout destroys the session and redirects to the login page.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(r.Context()); err != nil {
		http.Error(w, "logout error", http.StatusInternalServerError)
		return
	}
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", "/")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
