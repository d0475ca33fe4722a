// Package share implements catalog and flashcard share persistence.
// Shares are composite-key rows; inserting an existing pair is a no-op,
// which makes sharing idempotent at the storage level.
package share

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/cerego-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cerego-backend/internal/domain"
)

// Repo provides share persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new share repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const addCatalogShareSQL = `
INSERT INTO catalog_shares (catalog_id, shared_with_id, can_modify, created_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (catalog_id, shared_with_id) DO NOTHING`

const addFlashcardShareSQL = `
INSERT INTO flashcard_shares (flashcard_id, shared_with_id, can_modify, created_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (flashcard_id, shared_with_id) DO NOTHING`

const removeFlashcardShareSQL = `
DELETE FROM flashcard_shares
WHERE flashcard_id = $1 AND shared_with_id = $2`

const removeCatalogShareSQL = `
DELETE FROM catalog_shares
WHERE catalog_id = $1 AND shared_with_id = $2`

const catalogSharedWithSQL = `
SELECT EXISTS (SELECT 1 FROM catalog_shares
               WHERE catalog_id = $1 AND shared_with_id = $2)`

// AddCatalogShare grants a user read access to a catalog.
// Returns true if a new share row was created, false if the pair already
// existed ("already shared").
func (r *Repo) AddCatalogShare(ctx context.Context, catalogID, sharedWithID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, addCatalogShareSQL, catalogID, sharedWithID, false)
	if err != nil {
		return false, postgres.MapError(err, "catalog_share", catalogID)
	}
	return tag.RowsAffected() == 1, nil
}

// AddFlashcardShare grants a user read access to a flashcard.
// Returns true if a new share row was created.
func (r *Repo) AddFlashcardShare(ctx context.Context, flashcardID, sharedWithID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, addFlashcardShareSQL, flashcardID, sharedWithID, false)
	if err != nil {
		return false, postgres.MapError(err, "flashcard_share", flashcardID)
	}
	return tag.RowsAffected() == 1, nil
}

// RemoveFlashcardShare revokes a user's access to a shared flashcard.
// Returns domain.ErrNotFound if no such share exists.
func (r *Repo) RemoveFlashcardShare(ctx context.Context, flashcardID, sharedWithID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, removeFlashcardShareSQL, flashcardID, sharedWithID)
	if err != nil {
		return postgres.MapError(err, "flashcard_share", flashcardID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("flashcard share %s: %w", flashcardID, domain.ErrNotFound)
	}
	return nil
}

// RemoveCatalogShare revokes a user's access to a shared catalog.
func (r *Repo) RemoveCatalogShare(ctx context.Context, catalogID, sharedWithID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, removeCatalogShareSQL, catalogID, sharedWithID)
	if err != nil {
		return postgres.MapError(err, "catalog_share", catalogID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("catalog share %s: %w", catalogID, domain.ErrNotFound)
	}
	return nil
}

// CatalogSharedWith reports whether a catalog is shared with a user.
func (r *Repo) CatalogSharedWith(ctx context.Context, catalogID, userID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var shared bool
	if err := q.QueryRow(ctx, catalogSharedWithSQL, catalogID, userID).Scan(&shared); err != nil {
		return false, fmt.Errorf("catalog shared with: %w", err)
	}
	return shared, nil
}
