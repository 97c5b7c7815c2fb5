package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationsFS embed.FS

// Direction selects which way Migrate moves the schema.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// ParseDirection accepts "up" (default when empty) or "down".
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case "", Up:
		return Up, nil
	case Down:
		return Down, nil
	default:
		return "", fmt.Errorf("unknown migration direction %q", s)
	}
}

// Migrate applies the embedded migrations for driver to conn. The migrate
// instance is not closed: the drivers would close the shared pool with it.
func Migrate(ctx context.Context, conn *sql.DB, driver string, dir Direction) (uint, error) {
	m, err := newMigrator(conn, driver)
	if err != nil {
		return 0, err
	}

	done := make(chan error, 1)
	go func() {
		if dir == Down {
			done <- m.Down()
			return
		}
		done <- m.Up()
	}()

	select {
	case err = <-done:
	case <-ctx.Done():
		m.GracefulStop <- true
		<-done
		return 0, fmt.Errorf("migration interrupted: %w", ctx.Err())
	}

	if errors.Is(err, migrate.ErrNoChange) {
		log.Printf("[DB] action=migrate msg=no change driver=%s direction=%s", driver, dir)
		err = nil
	}
	if err != nil {
		return 0, fmt.Errorf("migrate %s: %w", dir, err)
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read migration version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("database is in a dirty state at version %d", version)
	}
	return version, nil
}

func newMigrator(conn *sql.DB, driver string) (*migrate.Migrate, error) {
	if conn == nil {
		return nil, errors.New("db connection cannot be nil")
	}
	name, err := NormalizeDriver(driver)
	if err != nil {
		return nil, err
	}

	src, err := iofs.New(migrationsFS, "migrations/"+name)
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}

	var target database.Driver
	switch name {
	case DriverSQLite3:
		target, err = migratesqlite.WithInstance(conn, &migratesqlite.Config{})
	default:
		target, err = migratemysql.WithInstance(conn, &migratemysql.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("create %s migration driver: %w", name, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, name, target)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return m, nil
}
