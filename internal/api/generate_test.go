package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/joestump/promptsmith/internal/api"
)

func lyraPayload(t *testing.T, env *testEnv) *api.PersonaPayload {
	t.Helper()
	p, err := env.Personas.Get("lyra")
	if err != nil {
		t.Fatalf("Get(lyra): %v", err)
	}
	return &api.PersonaPayload{ID: p.ID, Name: p.Name, Title: p.Title, Description: p.Description, Prompt: p.Prompt}
}

func TestGenerate_Success(t *testing.T) {
	gen := &stubGenerator{reply: "  ## ROLE: Launch planner\nDo the thing.\n\n"}
	env := newTestEnv(t, "secret123", gen)
	persona := lyraPayload(t, env)

	rec := env.do(t, http.MethodPost, "/generate", api.GenerateRequest{Persona: persona, UserTask: "Plan a marketing launch"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Generation-ID") == "" {
		t.Error("X-Generation-ID header missing")
	}
	resp := decode[api.GenerateResponse](t, rec)
	if resp.OptimizedPrompt != "## ROLE: Launch planner\nDo the thing." {
		t.Errorf("optimizedPrompt = %q", resp.OptimizedPrompt)
	}

	if len(gen.prompts) != 1 {
		t.Fatalf("model called %d times, want 1", len(gen.prompts))
	}
	if !strings.Contains(gen.prompts[0], persona.Prompt) {
		t.Error("meta-prompt does not contain the Lyra template")
	}
	if !strings.Contains(gen.prompts[0], "Plan a marketing launch") {
		t.Error("meta-prompt does not contain the task")
	}
}

func TestGenerate_PersonaByID(t *testing.T) {
	gen := &stubGenerator{reply: "ok"}
	env := newTestEnv(t, "", gen)

	rec := env.do(t, http.MethodPost, "/api/generate", `{"persona":{"id":"socrates"},"userTask":"Explain recursion"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	socrates, _ := env.Personas.Get("socrates")
	if len(gen.prompts) != 1 || !strings.Contains(gen.prompts[0], socrates.Prompt) {
		t.Error("catalog template was not used for an id-only persona")
	}
}

func TestGenerate_UnknownPersonaID(t *testing.T) {
	gen := &stubGenerator{reply: "ok"}
	env := newTestEnv(t, "", gen)

	rec := env.do(t, http.MethodPost, "/generate", `{"persona":{"id":"nobody"},"userTask":"x"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(gen.prompts) != 0 {
		t.Error("model called for an unknown persona")
	}
}

func TestGenerate_MissingInput(t *testing.T) {
	gen := &stubGenerator{reply: "ok"}
	env := newTestEnv(t, "", gen)

	bodies := []string{
		`{"userTask":"Plan a marketing launch"}`,
		`{"persona":{"id":"lyra"}}`,
		`{"persona":{"id":"lyra"},"userTask":""}`,
		`{"persona":{"id":"lyra"},"userTask":"   "}`,
	}
	for _, body := range bodies {
		rec := env.do(t, http.MethodPost, "/generate", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", body, rec.Code)
		}
		if resp := decode[api.ErrorResponse](t, rec); resp.Error != "Missing persona or userTask in request body." {
			t.Errorf("%s: error = %q", body, resp.Error)
		}
	}
	if len(gen.prompts) != 0 {
		t.Errorf("model called %d times for invalid requests", len(gen.prompts))
	}
}

func TestGenerate_InvalidBody(t *testing.T) {
	env := newTestEnv(t, "", &stubGenerator{reply: "ok"})
	rec := env.do(t, http.MethodPost, "/generate", `not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if resp := decode[api.ErrorResponse](t, rec); resp.Error != "Invalid request body." {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestGenerate_MissingAPIKey(t *testing.T) {
	env := newTestEnv(t, "secret123", nil)

	rec := env.do(t, http.MethodPost, "/generate", api.GenerateRequest{Persona: lyraPayload(t, env), UserTask: "Plan a marketing launch"})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if resp := decode[api.ErrorResponse](t, rec); resp.Error != "Server configuration error: Missing API Key." {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestGenerate_ProviderFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("model overloaded")}
	env := newTestEnv(t, "", gen)

	rec := env.do(t, http.MethodPost, "/generate", api.GenerateRequest{Persona: lyraPayload(t, env), UserTask: "Plan a marketing launch"})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if resp := decode[api.ErrorResponse](t, rec); resp.Error != "Failed to generate prompt: model overloaded" {
		t.Errorf("error = %q", resp.Error)
	}
	if len(gen.prompts) != 1 {
		t.Errorf("model called %d times, want exactly 1", len(gen.prompts))
	}
}

func TestGenerate_MethodNotAllowed(t *testing.T) {
	env := newTestEnv(t, "", &stubGenerator{reply: "ok"})

	for _, path := range []string{"/generate", "/api/generate"} {
		rec := env.do(t, http.MethodGet, path, nil)
		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s: status = %d, want 405", path, rec.Code)
		}
		if resp := decode[api.ErrorResponse](t, rec); resp.Error != "Method not allowed" {
			t.Errorf("%s: error = %q", path, resp.Error)
		}
	}
}
