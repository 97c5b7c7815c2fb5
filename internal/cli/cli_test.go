package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	h "rental-backend/internal/http/handlers"
)

func TestRoutesCommandPrintsTable(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GIN_MODE", "test")

	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"routes"})
	require.NoError(t, root.Execute())

	text := out.String()
	assert.Contains(t, text, "/api/properties/:id/archive")
	assert.Contains(t, text, "/api/payments/:id/receipt")
	assert.Contains(t, strings.ToUpper(text), "METHOD")
}

func TestMigrateCommandSQLite(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("DB_DRIVER", "sqlite3")
	t.Setenv("DB_DSN", "file:"+dir+"/rental.db?_foreign_keys=on")

	for _, args := range [][]string{{"migrate"}, {"migrate", "down"}, {"migrate", "up"}} {
		var out bytes.Buffer
		root := NewRootCommand()
		root.SetOut(&out)
		root.SetArgs(args)
		require.NoError(t, root.Execute(), "%v", args)
		assert.Contains(t, out.String(), "sqlite3 schema at version")
	}

	root := NewRootCommand()
	root.SetArgs([]string{"migrate", "sideways"})
	assert.Error(t, root.Execute())
}

func TestWriteRoutes(t *testing.T) {
	var out bytes.Buffer
	writeRoutes(&out, []h.RouteInfo{{Method: "GET", Path: "/api/health", Handler: "health"}})
	assert.Contains(t, out.String(), "/api/health")
}
