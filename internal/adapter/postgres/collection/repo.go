// Package collection implements the user catalog collection repository:
// the opt-in rows that put a PUBLIC catalog into a user's working set.
package collection

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/cerego-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cerego-backend/internal/domain"
)

// Repo provides collection persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new collection repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const addSQL = `
INSERT INTO user_catalog_collections (user_id, catalog_id, added_at)
VALUES ($1, $2, now())
ON CONFLICT (user_id, catalog_id) DO NOTHING`

const removeSQL = `
DELETE FROM user_catalog_collections
WHERE user_id = $1 AND catalog_id = $2`

// Add opts a catalog into the user's collection. Idempotent; returns true
// if a new row was created.
func (r *Repo) Add(ctx context.Context, userID, catalogID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, addSQL, userID, catalogID)
	if err != nil {
		return false, postgres.MapError(err, "collection", catalogID)
	}
	return tag.RowsAffected() == 1, nil
}

// Remove takes a catalog out of the user's collection.
// Returns domain.ErrNotFound if it was not collected.
func (r *Repo) Remove(ctx context.Context, userID, catalogID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, removeSQL, userID, catalogID)
	if err != nil {
		return postgres.MapError(err, "collection", catalogID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("collection entry %s: %w", catalogID, domain.ErrNotFound)
	}
	return nil
}
