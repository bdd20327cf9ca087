package migrate

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/Miraines/StudyPlanner/backend/internal/infra/db"
	migrationsFS "github.com/Miraines/StudyPlanner/backend/scripts/db/migrations"
)

// Up applies all available database migrations using the provided database handle.
// The handle is left open.
func Up(conn *sql.DB, dialect db.Dialect) error {
	var (
		driver database.Driver
		err    error
	)
	switch dialect {
	case db.Postgres:
		driver, err = postgres.WithInstance(conn, &postgres.Config{})
	case db.SQLite:
		driver, err = sqlite3.WithInstance(conn, &sqlite3.Config{})
	default:
		return fmt.Errorf("migrate: unsupported dialect %q", dialect)
	}
	if err != nil {
		return err
	}

	source, err := iofs.New(migrationsFS.FS, ".")
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", source, string(dialect), driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
