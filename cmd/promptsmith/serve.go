package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/joestump/promptsmith/internal/auth"
	"github.com/joestump/promptsmith/internal/build"
	"github.com/joestump/promptsmith/internal/config"
	"github.com/joestump/promptsmith/internal/db"
	"github.com/joestump/promptsmith/internal/handler"
	"github.com/joestump/promptsmith/internal/llm"
	"github.com/joestump/promptsmith/internal/metrics"
	"github.com/joestump/promptsmith/internal/persona"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log.Printf("starting %s", build.String())

			catalog, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			metrics.PersonasLoaded.Set(float64(catalog.Len()))

			var database *sqlx.DB
			if cfg.SharedSessions() {
				database, err = db.New(cfg.Session.Store, cfg.Session.DSN)
				if err != nil {
					return err
				}
				defer func() { _ = database.Close() }()

				if err := db.Migrate(database, cfg.Session.Store); err != nil {
					return err
				}
			}
			sessionManager := auth.NewSessionManager(database, cfg.Session.Store, cfg.Session.Lifetime, !cfg.InsecureCookies)

			gate := auth.NewGate(cfg.AppPassword)
			if !gate.Configured() {
				log.Printf("serve: APP_PASSWORD is not set; every login will fail with a configuration error")
			}

			optimizer, err := newOptimizer(context.Background(), cfg)
			if err != nil {
				return err
			}

			router := handler.NewRouter(handler.Deps{
				SessionManager: sessionManager,
				AuthHandlers:   auth.NewHandlers(gate, sessionManager),
				AuthMiddleware: auth.NewMiddleware(sessionManager),
				Gate:           gate,
				Optimizer:      optimizer,
				Personas:       catalog,
				DB:             database,
			})

			log.Printf("listening on %s", cfg.HTTP.Addr)
			return http.ListenAndServe(cfg.HTTP.Addr, router)
		},
	}
}

// newOptimizer builds the optimizer for cfg. A missing API key is not fatal:
// the server starts and reports the configuration error per request.
func newOptimizer(ctx context.Context, cfg *config.Config) (*llm.Optimizer, error) {
	gen, err := llm.New(ctx, cfg)
	if errors.Is(err, llm.ErrNotConfigured) {
		log.Printf("serve: no LLM API key set (API_KEY or PROMPTSMITH_LLM_API_KEY); generation will fail with a configuration error")
		return llm.NewOptimizer(nil, cfg.LLM.Provider), nil
	}
	if err != nil {
		return nil, err
	}
	return llm.NewOptimizer(gen, cfg.LLM.Provider), nil
}

// loadCatalog returns the persona catalog from cfg.PersonaFile, or the
// built-in one.
func loadCatalog(cfg *config.Config) (*persona.Catalog, error) {
	if cfg.PersonaFile != "" {
		return persona.Load(cfg.PersonaFile)
	}
	return persona.Default()
}
