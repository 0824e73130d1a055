package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/joestump/promptsmith/internal/config"
	"github.com/joestump/promptsmith/internal/db"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the session table in the shared session store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.SharedSessions() {
				return fmt.Errorf("session store is %q; set PROMPTSMITH_SESSION_STORE to sqlite3, mysql, or postgres", cfg.Session.Store)
			}

			database, err := db.New(cfg.Session.Store, cfg.Session.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.Session.Store); err != nil {
				return err
			}

			log.Println("migrations complete")
			return nil
		},
	}
}
