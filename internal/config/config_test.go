package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	env, err := LoadEnv("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", env.AppAddr)
	assert.Equal(t, "mysql", env.DBDriver)
	assert.Equal(t, 25, env.DBMaxOpenConns)
	assert.Equal(t, 10*time.Minute, env.DBConnMaxLifetime)
	assert.Equal(t, "EUR", env.ReceiptCurrency)
	assert.Equal(t, []string{"*"}, env.CORSAllowedOrigins)
	assert.False(t, env.StorageEnabled())

	assert.True(t, strings.HasPrefix(env.DBDSN, "root@tcp(127.0.0.1:3306)/rental_app?"), env.DBDSN)
	assert.Contains(t, env.DBDSN, "parseTime=true")
	assert.Contains(t, env.DBDSN, "multiStatements=true")
}

func TestLoadEnvFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", ":memory:")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("S3_BUCKET", "photos")
	t.Setenv("S3_USE_PATH_STYLE", "true")
	t.Setenv("RECEIPT_CURRENCY", "usd")

	env, err := LoadEnv("")
	require.NoError(t, err)
	assert.Equal(t, ":9090", env.AppAddr)
	assert.Equal(t, "sqlite3", env.DBDriver)
	assert.Equal(t, ":memory:", env.DBDSN)
	assert.True(t, env.DBAutoMigrate)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, env.CORSAllowedOrigins)
	assert.True(t, env.StorageEnabled())
	assert.True(t, env.S3.UsePathStyle)
	assert.Equal(t, "USD", env.ReceiptCurrency)
}

func TestLoadEnvConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "rental.yaml")
	require.NoError(t, os.WriteFile(path, []byte("APP_ADDR: \":7000\"\nDB_NAME: bookings\n"), 0o600))
	t.Setenv("DB_USER", "svc")

	env, err := LoadEnv(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", env.AppAddr)
	assert.True(t, strings.HasPrefix(env.DBDSN, "svc@tcp(127.0.0.1:3306)/bookings?"), env.DBDSN)

	_, err = LoadEnv(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvRejectsUnknownDriver(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_DRIVER", "oracle")
	_, err := LoadEnv("")
	assert.Error(t, err)
}

func TestConnectDBSQLite(t *testing.T) {
	env := Env{DBDriver: "sqlite3", DBDSN: ":memory:", DBConnectTimeout: time.Second}
	conn, err := ConnectDB(context.Background(), env)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	var one int
	require.NoError(t, conn.Get(&one, "SELECT 1"))
	assert.Equal(t, 1, one)
}

func TestConnectDBGivesUp(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	env := Env{DBDriver: "mysql", DBDSN: "root@tcp(127.0.0.1:1)/none?timeout=100ms", DBConnectTimeout: time.Second}
	_, err := ConnectDB(ctx, env)
	assert.Error(t, err)
}
