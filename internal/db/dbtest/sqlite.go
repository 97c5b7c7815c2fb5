// Package dbtest builds throwaway databases for package tests.
package dbtest

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"rental-backend/internal/db"
)

// NewSQLite returns a migrated in-memory SQLite database. The pool is pinned to
// one connection because every new :memory: connection is an empty database.
func NewSQLite(t testing.TB) *sqlx.DB {
	t.Helper()

	conn, err := sqlx.Open(db.DriverSQLite3, ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(0)
	t.Cleanup(func() { _ = conn.Close() })

	if _, err := db.Migrate(context.Background(), conn.DB, db.DriverSQLite3, db.Up); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return conn
}
