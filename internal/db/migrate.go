package db

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	embedsql "github.com/gyeh/schedh/internal/sql"
)

const migrationsDir = "migrations"

// migrationFiles lists the embedded .sql migrations in filename order.
func migrationFiles() ([]string, error) {
	names, err := fs.Glob(embedsql.Migrations, path.Join(migrationsDir, "*.sql"))
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// ApplyMigrations prepares the schedh schema: the embedded migrations in
// filename order, then the catalog-driven filings table. Every statement is
// IF NOT EXISTS, so running it against a migrated database is a no-op.
func ApplyMigrations(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) error {
	files, err := migrationFiles()
	if err != nil {
		return err
	}

	for _, file := range files {
		body, err := fs.ReadFile(embedsql.Migrations, file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}
		log.Debug().Str("migration", path.Base(file)).Msg("applying migration")
		if _, err := pool.Exec(ctx, string(body)); err != nil {
			return fmt.Errorf("migration %s: %w", path.Base(file), err)
		}
	}

	if err := EnsureFilingsTable(ctx, pool); err != nil {
		return err
	}

	log.Info().
		Int("migrations", len(files)).
		Int("filing_columns", len(FilingColumns())).
		Msg("schedh schema ready")
	return nil
}
