package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/cerego-backend/migrations"
)

// migrate applies all pending goose migrations. goose requires *sql.DB,
// so this opens a short-lived connection separate from the pgx pool.
//
// goose.NewProvider handles $$-delimited PL/pgSQL bodies correctly,
// unlike the legacy goose.Up which splits on semicolons.
func migrate(ctx context.Context, dsn string, log *slog.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("create goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	log.InfoContext(ctx, "migrations applied", slog.Int("count", len(results)))
	return nil
}
