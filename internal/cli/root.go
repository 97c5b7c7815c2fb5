// Package cli holds the cobra commands of the rental backend binary.
package cli

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"rental-backend/internal/config"
)

// NewRootCommand runs serve when no subcommand is given.
func NewRootCommand() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:           "rental-backend",
		Short:         "Rental properties backend: properties, tenants, bookings, payments",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./config.yaml when present)")

	loadEnv := func() (config.Env, error) {
		env, err := config.LoadEnv(cfgFile)
		if err != nil {
			return env, err
		}
		if env.GinMode != "" {
			gin.SetMode(env.GinMode)
		}
		return env, nil
	}

	serve := newServeCommand(loadEnv)
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())
	root.AddCommand(serve, newMigrateCommand(loadEnv), newRoutesCommand(loadEnv))
	return root
}
