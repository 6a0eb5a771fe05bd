package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// Migrate brings the schema of db up to date. driver selects the migration
// set and SQL dialect (DriverPostgres or DriverSQLite).
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	var dialect goose.Dialect
	switch driver {
	case DriverPostgres:
		dialect = goose.DialectPostgres
	case DriverSQLite:
		dialect = goose.DialectSQLite3
	default:
		return fmt.Errorf("%s: %q", ErrMsgUnsupportedDialect, driver)
	}

	dir, err := fs.Sub(migrationsFS, "migrations/"+driver)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgMigrationsFailed, err)
	}

	provider, err := goose.NewProvider(dialect, db, dir)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgMigrationsFailed, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgMigrationsFailed, err)
	}
	for _, r := range results {
		slog.Default().Info(LogMsgMigrationApplied, "driver", driver, "version", r.Source.Version, "duration", r.Duration)
	}
	return nil
}
