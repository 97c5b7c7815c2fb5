package cli

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"rental-backend/internal/app"
	"rental-backend/internal/config"
	"rental-backend/internal/db"
	router "rental-backend/internal/http"
	"rental-backend/internal/metrics"
)

func newServeCommand(loadEnv func() (config.Env, error)) *cobra.Command {
	var migrateFirst bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := loadEnv()
			if err != nil {
				return err
			}
			if migrateFirst {
				env.DBAutoMigrate = true
			}
			return serve(cmd.Context(), env)
		},
	}
	cmd.Flags().BoolVar(&migrateFirst, "migrate", false, "apply pending migrations before serving (same as DB_AUTO_MIGRATE=true)")
	return cmd
}

func serve(ctx context.Context, env config.Env) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := config.ConnectDB(ctx, env)
	if err != nil {
		return err
	}
	defer conn.Close()

	if env.DBAutoMigrate {
		version, err := db.Migrate(ctx, conn.DB, env.DBDriver, db.Up)
		if err != nil {
			return err
		}
		log.Printf("[DB] schema at version %d", version)
	}

	blobs, err := app.NewBlobStore(ctx, env)
	if err != nil {
		return err
	}
	a, err := app.New(conn, env, metrics.New(), blobs)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           router.NewRouter(a),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	timeout := env.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Println("Server stopped cleanly.")
	return nil
}
