// Package testutil provides helpers shared by package tests.
package testutil

import (
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/joestump/promptsmith/internal/db"
	_ "modernc.org/sqlite"
)

// NewTestDB opens an in-memory SQLite DB with the session schema applied.
func NewTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	// Shared cache so every pool connection sees the same in-memory
	// database; the test name keeps databases apart.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_busy_timeout=5000"
	conn, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open in-memory sqlite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	if err := db.Migrate(conn, "sqlite3"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}
