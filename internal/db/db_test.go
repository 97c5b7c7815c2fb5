package db

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := sql.Open(DriverSQLite3, ":memory:")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func tableExists(t *testing.T, conn *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := conn.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, name).Scan(&n)
	require.NoError(t, err)
	return n == 1
}

func TestMigrateUpAndDown(t *testing.T) {
	conn := openSQLite(t)
	ctx := context.Background()

	version, err := Migrate(ctx, conn, DriverSQLite3, Up)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	for _, table := range []string{"properties", "tenants", "bookings", "payments", "reviews", "maintenance_requests", "property_images"} {
		assert.True(t, tableExists(t, conn, table), table)
	}

	// running again is a no-op
	version, err = Migrate(ctx, conn, DriverSQLite3, Up)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	version, err = Migrate(ctx, conn, DriverSQLite3, Down)
	require.NoError(t, err)
	assert.Equal(t, uint(0), version)
	assert.False(t, tableExists(t, conn, "properties"))
}

func TestMigrateRejectsUnknownDriver(t *testing.T) {
	_, err := Migrate(context.Background(), openSQLite(t), "postgres", Up)
	require.Error(t, err)
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("")
	require.NoError(t, err)
	assert.Equal(t, Up, d)

	d, err = ParseDirection("down")
	require.NoError(t, err)
	assert.Equal(t, Down, d)

	_, err = ParseDirection("sideways")
	assert.Error(t, err)
}

func TestNormalizeDriver(t *testing.T) {
	cases := map[string]string{"": DriverMySQL, "MySQL": DriverMySQL, "sqlite": DriverSQLite3, " sqlite3 ": DriverSQLite3}
	for in, want := range cases {
		got, err := NormalizeDriver(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := NormalizeDriver("oracle")
	assert.Error(t, err)
}

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, IsDuplicateKey(fmt.Errorf("insert: %w", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})))
	assert.False(t, IsDuplicateKey(&mysql.MySQLError{Number: 1452}))
	assert.False(t, IsDuplicateKey(nil))

	conn := openSQLite(t)
	_, err := Migrate(context.Background(), conn, DriverSQLite3, Up)
	require.NoError(t, err)

	insert := `INSERT INTO tenants (full_name, email, created_at, created_by, updated_at, updated_by)
		VALUES ('A', 'a@example.com', '2026-01-01 00:00:00', 's', '2026-01-01 00:00:00', 's')`
	_, err = conn.Exec(insert)
	require.NoError(t, err)
	_, err = conn.Exec(insert)
	require.Error(t, err)
	assert.True(t, IsDuplicateKey(err), "sqlite unique violation: %v", err)
	assert.False(t, IsForeignKeyViolation(err))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(&mysql.MySQLError{Number: 1451}))
	assert.True(t, IsForeignKeyViolation(&mysql.MySQLError{Number: 1452}))
	assert.True(t, IsForeignKeyViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}))
	assert.False(t, IsForeignKeyViolation(&mysql.MySQLError{Number: 1062}))
}
