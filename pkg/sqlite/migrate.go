package sqlite

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/vadimbarashkov/shorturl/migrations"

	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
)

const migrationsDir = "sqlite"

// RunMigrations applies the embedded SQLite migrations to the database file at path.
func RunMigrations(path string) error {
	const op = "sqlite.RunMigrations"

	src, err := iofs.New(migrations.SQLite, migrationsDir)
	if err != nil {
		return fmt.Errorf("%s: failed to open migrations source: %w", op, err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, "sqlite3://"+path)
	if err != nil {
		return fmt.Errorf("%s: failed to initialize migrations: %w", op, err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s: failed to run migrations: %w", op, err)
	}

	return nil
}

// RollbackMigrations reverts every embedded SQLite migration.
func RollbackMigrations(path string) error {
	const op = "sqlite.RollbackMigrations"

	src, err := iofs.New(migrations.SQLite, migrationsDir)
	if err != nil {
		return fmt.Errorf("%s: failed to open migrations source: %w", op, err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, "sqlite3://"+path)
	if err != nil {
		return fmt.Errorf("%s: failed to initialize migrations: %w", op, err)
	}
	defer m.Close()

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s: failed to rollback migrations: %w", op, err)
	}

	return nil
}
