package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/joestump/promptsmith/internal/auth"
	"github.com/joestump/promptsmith/internal/flow"
	"github.com/joestump/promptsmith/internal/llm"
	"github.com/joestump/promptsmith/internal/persona"
)

const missingAPIKeyMessage = "Server configuration error: Missing API Key."

// UIHandler serves the login page, the main flow page and its HTMX
// fragments. The view state lives in the caller's session.
type UIHandler struct {
	sessions  *scs.SessionManager
	optimizer *llm.Optimizer
	personas  *persona.Catalog
	now       func() time.Time
}

// NewUIHandler creates a new UIHandler.
func NewUIHandler(sm *scs.SessionManager, o *llm.Optimizer, c *persona.Catalog) *UIHandler {
	return &UIHandler{sessions: sm, optimizer: o, personas: c, now: time.Now}
}

// Index serves GET /: the login page before the gate, the flow page after.
func (h *UIHandler) Index(w http.ResponseWriter, r *http.Request) {
	s := auth.LoadState(r.Context(), h.sessions)
	if lo, ok := s.(flow.LoggedOut); ok {
		render(w, "login.html", LoginPage{BasePage: newBasePage(r), Error: lo.AuthError})
		return
	}
	render(w, "app.html", AppPage{BasePage: newBasePage(r), Flow: h.view(s, "")})
}

// View serves GET /ui/view, the current flow fragment.
func (h *UIHandler) View(w http.ResponseWriter, r *http.Request) {
	h.renderFlow(w, auth.LoadState(r.Context(), h.sessions), "")
}

// SelectPersona handles POST /ui/persona. A task sent along is kept.
func (h *UIHandler) SelectPersona(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	id := r.PostFormValue("persona")
	if _, err := h.personas.Get(id); err != nil {
		http.Error(w, "unknown persona", http.StatusBadRequest)
		return
	}

	next, err := flow.SelectPersona(auth.LoadState(r.Context(), h.sessions), id)
	if err != nil {
		transitionError(w, r, err)
		return
	}
	next = withTask(r, next)
	auth.SaveState(r.Context(), h.sessions, next)
	h.renderFlow(w, next, "")
}

// EditTask handles POST /ui/task. It answers with the generate button only,
// so the textarea being typed into is never swapped.
func (h *UIHandler) EditTask(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	next, err := flow.EditTask(auth.LoadState(r.Context(), h.sessions), r.PostFormValue("task"))
	if err != nil {
		transitionError(w, r, err)
		return
	}
	auth.SaveState(r.Context(), h.sessions, next)
	renderFragment(w, "task_update", h.view(next, ""))
}

// Generate handles POST /ui/generate. The Generating state is committed
// before the model is called, so a second submit in the same session gets
// 409 until this one finishes.
func (h *UIHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	ctx := r.Context()
	s := withTask(r, auth.LoadState(ctx, h.sessions))

	started, err := flow.StartGenerate(s)
	if errors.Is(err, flow.ErrNotReady) {
		auth.SaveState(ctx, h.sessions, s)
		h.renderFlow(w, s, flow.MissingInputMessage)
		return
	}
	if err != nil {
		transitionError(w, r, err)
		return
	}
	if err := auth.CommitState(ctx, h.sessions, started); err != nil {
		log.Printf("ui: commit session: %v", err)
		http.Error(w, "session error", http.StatusInternalServerError)
		return
	}

	prompt, genErr := h.optimize(ctx, started)
	if genErr != nil {
		log.Printf("ui: generation failed: %v", genErr)
	}
	next, err := flow.Finish(started, prompt, genErr)
	if err != nil {
		transitionError(w, r, err)
		return
	}
	// Logging out during the call must not be undone by saving the result.
	alive, err := auth.Alive(ctx, h.sessions)
	if err != nil {
		log.Printf("ui: find session: %v", err)
	}
	if !alive {
		if err := h.sessions.Destroy(ctx); err != nil {
			log.Printf("ui: destroy session: %v", err)
		}
		transitionError(w, r, flow.ErrLocked)
		return
	}
	auth.SaveState(ctx, h.sessions, next)
	h.renderFlow(w, next, "")
}

// optimize runs the single model call for g. The call is detached from the
// request so a closed tab does not leave the session stuck in Generating.
func (h *UIHandler) optimize(ctx context.Context, g flow.Generating) (string, error) {
	p, err := h.personas.Get(g.PersonaID)
	if err != nil {
		return "", err
	}
	res, err := h.optimizer.Optimize(context.WithoutCancel(ctx), p, g.Task)
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		return "", errors.New(missingAPIKeyMessage)
	case err != nil:
		return "", err
	}
	return res.Prompt, nil
}

// Copy handles POST /ui/copy. The browser has already written the prompt
// to the clipboard; this turns the "copied" label on for two seconds.
func (h *UIHandler) Copy(w http.ResponseWriter, r *http.Request) {
	next, err := flow.Copy(auth.LoadState(r.Context(), h.sessions), h.now())
	if err != nil {
		transitionError(w, r, err)
		return
	}
	auth.SaveState(r.Context(), h.sessions, next)
	h.renderFlow(w, next, "")
}

// Reset handles POST /ui/reset.
func (h *UIHandler) Reset(w http.ResponseWriter, r *http.Request) {
	next, err := flow.StartOver(auth.LoadState(r.Context(), h.sessions))
	if err != nil {
		transitionError(w, r, err)
		return
	}
	auth.SaveState(r.Context(), h.sessions, next)
	h.renderFlow(w, next, "")
}

func (h *UIHandler) view(s flow.State, notice string) FlowView {
	return newFlowView(s, h.personas, h.now(), notice)
}

func (h *UIHandler) renderFlow(w http.ResponseWriter, s flow.State, notice string) {
	renderFragment(w, "flow", h.view(s, notice))
}

// withTask applies a "task" form value, if one was posted, to states that
// accept task edits.
func withTask(r *http.Request, s flow.State) flow.State {
	task, ok := r.PostForm["task"]
	if !ok || len(task) == 0 {
		return s
	}
	next, err := flow.EditTask(s, task[0])
	if err != nil {
		return s
	}
	return next
}

// transitionError maps a refused flow transition to an HTTP response.
func transitionError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, flow.ErrLocked):
		if isHTMX(r) {
			w.Header().Set("HX-Redirect", "/")
		}
		http.Error(w, "login required", http.StatusUnauthorized)
	case errors.Is(err, flow.ErrBusy):
		http.Error(w, "a generation is already in progress", http.StatusConflict)
	default:
		http.Error(w, "action not available in the current step", http.StatusConflict)
	}
}
