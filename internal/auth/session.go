package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/alexedwards/scs/mysqlstore"
	"github.com/alexedwards/scs/postgresstore"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/jmoiron/sqlx"

	"github.com/joestump/promptsmith/internal/flow"
)

// SessionViewKey is the session key holding the flow.Snapshot of the UI.
const SessionViewKey = "view"

// NewSessionManager creates an SCS session manager. With a nil db the
// sessions live in process memory; otherwise driver selects the store:
// "mysql", "postgres" or "sqlite3" (default).
// The cookie is not persisted, so closing the browser logs the user out.
func NewSessionManager(db *sqlx.DB, driver string, lifetime time.Duration, secure bool) *scs.SessionManager {
	sm := scs.New()
	switch {
	case db == nil:
		sm.Store = memstore.New()
	case driver == "mysql":
		sm.Store = mysqlstore.New(db.DB)
	case driver == "postgres":
		sm.Store = postgresstore.New(db.DB)
	default: // sqlite3
		sm.Store = sqlite3store.New(db.DB)
	}
	sm.Lifetime = lifetime
	sm.Cookie.Name = "promptsmith_session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Persist = false
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = secure
	return sm
}

// LoadState returns the session's view state, or the initial state.
func LoadState(ctx context.Context, sm *scs.SessionManager) flow.State {
	snap, ok := sm.Get(ctx, SessionViewKey).(flow.Snapshot)
	if !ok {
		return flow.Initial()
	}
	return flow.Restore(snap)
}

// SaveState stores s in the session.
func SaveState(ctx context.Context, sm *scs.SessionManager, s flow.State) {
	sm.Put(ctx, SessionViewKey, flow.Save(s))
}

// CommitState stores s and writes the session to the store immediately, so
// concurrent requests in the same session observe it before the current
// request finishes.
func CommitState(ctx context.Context, sm *scs.SessionManager, s flow.State) error {
	SaveState(ctx, sm, s)
	_, _, err := sm.Commit(ctx)
	return err
}

// Alive reports whether the session in ctx is still present in the store.
// A session destroyed by a concurrent request (logout) is not.
func Alive(ctx context.Context, sm *scs.SessionManager) (bool, error) {
	token := sm.Token(ctx)
	if token == "" {
		return false, nil
	}
	_, found, err := sm.Store.Find(token)
	return found, err
}
