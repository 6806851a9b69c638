package postgres

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/vadimbarashkov/shorturl/migrations"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
)

const migrationsDir = "postgres"

func newMigrate(dsn string) (*migrate.Migrate, error) {
	src, err := iofs.New(migrations.Postgres, migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open migrations source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize migrations: %w", err)
	}

	return m, nil
}

// RunMigrations applies the embedded PostgreSQL migrations to the database at dsn.
func RunMigrations(dsn string) error {
	const op = "postgres.RunMigrations"

	m, err := newMigrate(dsn)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s: failed to run migrations: %w", op, err)
	}

	return nil
}

// RollbackMigrations reverts every embedded PostgreSQL migration.
func RollbackMigrations(dsn string) error {
	const op = "postgres.RollbackMigrations"

	m, err := newMigrate(dsn)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer m.Close()

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s: failed to rollback migrations: %w", op, err)
	}

	return nil
}
