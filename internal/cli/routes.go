package cli

import (
	"io"

	"github.com/jmoiron/sqlx"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"rental-backend/internal/app"
	"rental-backend/internal/config"
	"rental-backend/internal/db"
	router "rental-backend/internal/http"
	h "rental-backend/internal/http/handlers"
)

// The route table does not need a reachable database: repositories only
// touch the pool when called.
func newRoutesCommand(loadEnv func() (config.Env, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the HTTP route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := loadEnv()
			if err != nil {
				return err
			}
			conn, err := sqlx.Open(db.DriverSQLite3, ":memory:")
			if err != nil {
				return err
			}
			defer conn.Close()

			a, err := app.New(conn, env, nil, nil)
			if err != nil {
				return err
			}
			writeRoutes(cmd.OutOrStdout(), h.SortedRoutes(router.NewRouter(a).Routes()))
			return nil
		},
	}
}

func writeRoutes(w io.Writer, routes []h.RouteInfo) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Method", "Path", "Handler"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	for _, rt := range routes {
		table.Append([]string{rt.Method, rt.Path, rt.Handler})
	}
	table.Render()
}
