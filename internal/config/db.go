package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"rental-backend/internal/db"
)

// ConnectDB opens the pool and waits for the database to answer, retrying
// with exponential backoff up to env.DBConnectTimeout.
func ConnectDB(ctx context.Context, env Env) (*sqlx.DB, error) {
	conn, err := sqlx.Open(env.DBDriver, env.DBDSN)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", env.DBDriver, err)
	}

	if env.DBDriver == db.DriverSQLite3 {
		// One writer at a time; extra connections only produce "database is locked".
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(env.DBMaxOpenConns)
		conn.SetMaxIdleConns(env.DBMaxIdleConns)
	}
	conn.SetConnMaxLifetime(env.DBConnMaxLifetime)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 250 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = env.DBConnectTimeout

	attempt := 0
	ping := func() error {
		attempt++
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		err := conn.PingContext(pingCtx)
		if err != nil {
			log.Printf("[DB] ping attempt=%d failed: %v", attempt, err)
		}
		return err
	}
	if err := backoff.Retry(ping, backoff.WithContext(b, ctx)); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping %s after %d attempts: %w", env.DBDriver, attempt, err)
	}

	log.Printf("[DB] connected driver=%s", env.DBDriver)
	return conn, nil
}
