package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/promptsmith/internal/api"
	"github.com/joestump/promptsmith/internal/auth"
	"github.com/joestump/promptsmith/internal/llm"
	"github.com/joestump/promptsmith/internal/persona"
)

// stubGenerator is an llm.Generator that records every call.
type stubGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.reply, s.err
}

// testEnv holds the router under test and the stub behind it.
type testEnv struct {
	Router   http.Handler
	Gen      *stubGenerator
	Personas *persona.Catalog
}

// newTestEnv wires the API the way the server does: once at the root and
// once under /api. An empty password or a nil gen leaves that part
// unconfigured.
func newTestEnv(t *testing.T, password string, gen *stubGenerator) *testEnv {
	t.Helper()
	catalog, err := persona.Default()
	if err != nil {
		t.Fatalf("persona.Default: %v", err)
	}

	var g llm.Generator
	if gen != nil {
		g = gen
	}
	deps := api.Deps{
		Gate:      auth.NewGate(password),
		Optimizer: llm.NewOptimizer(g, "stub"),
		Personas:  catalog,
	}

	r := chi.NewRouter()
	api.RegisterRoutes(r, deps)
	r.Mount("/api", api.NewAPIRouter(deps))
	return &testEnv{Router: r, Gen: gen, Personas: catalog}
}

func (env *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}
	return v
}
