package handler

import (
	"io/fs"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/joestump/promptsmith/docs/swagger"
	"github.com/joestump/promptsmith/internal/api"
	"github.com/joestump/promptsmith/internal/auth"
	"github.com/joestump/promptsmith/internal/llm"
	"github.com/joestump/promptsmith/internal/persona"
	"github.com/joestump/promptsmith/web"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	SessionManager *scs.SessionManager
	AuthHandlers   *auth.Handlers
	AuthMiddleware *auth.Middleware
	Gate           *auth.Gate
	Optimizer      *llm.Optimizer
	Personas       *persona.Catalog
	DB             *sqlx.DB // session store database; nil for the memory store
}

// NewRouter assembles the full chi router with all middleware and routes.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Static assets (embedded). fs.Sub so the file server sees css/app.css
	// directly, not static/css/app.css.
	staticSub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("failed to sub static FS: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServerFS(staticSub)))

	r.Get("/healthz", NewHealthHandler(deps.DB).Check)
	r.Handle("/metrics", promhttp.Handler())

	// JSON API: stateless, no session. Served at the root for existing
	// clients and under /api.
	apiDeps := api.Deps{Gate: deps.Gate, Optimizer: deps.Optimizer, Personas: deps.Personas}
	api.RegisterRoutes(r, apiDeps)
	r.Get("/api/docs/*", httpSwagger.WrapHandler)
	r.Mount("/api", api.NewAPIRouter(apiDeps))

	// Browser UI: session backed.
	ui := NewUIHandler(deps.SessionManager, deps.Optimizer, deps.Personas)
	theme := NewThemeHandler()
	r.Group(func(r chi.Router) {
		r.Use(deps.SessionManager.LoadAndSave)

		r.Get("/", ui.Index)
		r.Post("/ui/login", deps.AuthHandlers.Login)
		r.Post("/ui/logout", deps.AuthHandlers.Logout)
		r.Post("/ui/theme", theme.Toggle)

		r.Group(func(r chi.Router) {
			r.Use(deps.AuthMiddleware.RequireAuth)
			r.Get("/ui/view", ui.View)
			r.Post("/ui/persona", ui.SelectPersona)
			r.Post("/ui/task", ui.EditTask)
			r.Post("/ui/generate", ui.Generate)
			r.Post("/ui/copy", ui.Copy)
			r.Post("/ui/reset", ui.Reset)
		})
	})

	return r
}
