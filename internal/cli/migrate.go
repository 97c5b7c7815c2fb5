package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"rental-backend/internal/config"
	"rental-backend/internal/db"
)

func newMigrateCommand(loadEnv func() (config.Env, error)) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or roll back the embedded schema migrations",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := "up"
			if len(args) == 1 {
				arg = args[0]
			}
			dir, err := db.ParseDirection(arg)
			if err != nil {
				return err
			}
			env, err := loadEnv()
			if err != nil {
				return err
			}

			conn, err := config.ConnectDB(cmd.Context(), env)
			if err != nil {
				return err
			}
			defer conn.Close()

			version, err := db.Migrate(cmd.Context(), conn.DB, env.DBDriver, dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrate %s: %s schema at version %d\n", arg, env.DBDriver, version)
			return nil
		},
	}
}
