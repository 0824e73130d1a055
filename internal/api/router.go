package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/promptsmith/internal/auth"
	"github.com/joestump/promptsmith/internal/llm"
	"github.com/joestump/promptsmith/internal/persona"
)

// maxBodyBytes caps request bodies. Persona templates are a few KB.
const maxBodyBytes = 1 << 20

// Deps holds all dependencies required to build the API router.
type Deps struct {
	Gate      *auth.Gate
	Optimizer *llm.Optimizer
	Personas  *persona.Catalog
}

// NewAPIRouter creates the chi sub-router mounted at /api.
func NewAPIRouter(deps Deps) chi.Router {
	r := chi.NewRouter()
	RegisterRoutes(r, deps)
	r.Get("/personas", (&personasHandler{catalog: deps.Personas}).List)
	return r
}

// RegisterRoutes registers POST /auth and POST /generate on r. Each endpoint
// answers other methods with its own 405 body.
func RegisterRoutes(r chi.Router, deps Deps) {
	ah := &authHandler{gate: deps.Gate}
	r.Route("/auth", func(r chi.Router) {
		r.Use(jsonContentType)
		r.MethodNotAllowed(ah.MethodNotAllowed)
		r.Post("/", ah.Auth)
	})

	gh := &generateHandler{optimizer: deps.Optimizer, catalog: deps.Personas}
	r.Route("/generate", func(r chi.Router) {
		r.Use(jsonContentType)
		r.MethodNotAllowed(gh.MethodNotAllowed)
		r.Post("/", gh.Generate)
	})
}

// jsonContentType is a middleware that sets Content-Type: application/json on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
