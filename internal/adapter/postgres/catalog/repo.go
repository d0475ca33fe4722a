// Package catalog implements the Catalog repository using PostgreSQL.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/cerego-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cerego-backend/internal/domain"
)

// Repo provides catalog persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const catalogColumns = `id, owner_id, name, description, language, visibility, created_at`

const createCatalogSQL = `
INSERT INTO catalogs (id, owner_id, name, description, language, visibility, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + catalogColumns

const getCatalogByIDSQL = `
SELECT ` + catalogColumns + `
FROM catalogs
WHERE id = $1`

const getOwnedByIDsSQL = `
SELECT ` + catalogColumns + `
FROM catalogs
WHERE owner_id = $1 AND id = ANY($2::uuid[])`

const setVisibilitySQL = `
UPDATE catalogs
SET visibility = $3
WHERE id = $1 AND owner_id = $2`

const deleteCatalogSQL = `
DELETE FROM catalogs
WHERE id = $1 AND owner_id = $2`

const linkFlashcardSQL = `
INSERT INTO catalog_flashcards (catalog_id, flashcard_id)
VALUES ($1, $2)
ON CONFLICT (catalog_id, flashcard_id) DO NOTHING`

// Accessible = owned ∪ public ∪ explicitly shared with the user.
const listAccessibleSQL = `
SELECT ` + catalogColumns + `
FROM catalogs c
WHERE c.owner_id = $1
   OR c.visibility = 'PUBLIC'
   OR EXISTS (SELECT 1 FROM catalog_shares cs
              WHERE cs.catalog_id = c.id AND cs.shared_with_id = $1)
ORDER BY c.created_at DESC`

// Collection = owned ∪ explicitly shared ∪ public catalogs the user has
// opted into. PUBLIC alone does not put a catalog in the collection.
const listCollectionSQL = `
SELECT ` + catalogColumns + `
FROM catalogs c
WHERE c.owner_id = $1
   OR EXISTS (SELECT 1 FROM catalog_shares cs
              WHERE cs.catalog_id = c.id AND cs.shared_with_id = $1)
   OR (c.visibility = 'PUBLIC'
       AND EXISTS (SELECT 1 FROM user_catalog_collections uc
                   WHERE uc.catalog_id = c.id AND uc.user_id = $1))
ORDER BY c.created_at DESC`

// Flashcards in this catalog, owned by the catalog owner, that are linked
// to no other catalog. Used by cascade delete.
const exclusiveFlashcardIDsSQL = `
SELECT f.id
FROM flashcards f
JOIN catalog_flashcards cf ON cf.flashcard_id = f.id AND cf.catalog_id = $1
WHERE f.owner_id = $2
  AND NOT EXISTS (SELECT 1 FROM catalog_flashcards other
                  WHERE other.flashcard_id = f.id AND other.catalog_id != $1)`

// Create inserts a new catalog. A duplicate (owner, name) pair results in
// domain.ErrAlreadyExists via the unique index.
func (r *Repo) Create(ctx context.Context, c domain.Catalog) (domain.Catalog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	now := time.Now().UTC().Truncate(time.Microsecond)

	created, err := scanCatalogRow(q.QueryRow(ctx, createCatalogSQL,
		c.ID, c.OwnerID, c.Name, c.Description, c.Language, c.Visibility, now))
	if err != nil {
		return domain.Catalog{}, postgres.MapError(err, "catalog", c.ID)
	}
	return created, nil
}

// GetByID returns a catalog by primary key without access filtering.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Catalog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCatalogRow(q.QueryRow(ctx, getCatalogByIDSQL, id))
	if err != nil {
		return domain.Catalog{}, postgres.MapError(err, "catalog", id)
	}
	return c, nil
}

// GetOwnedByIDs returns the subset of the given catalogs owned by ownerID.
func (r *Repo) GetOwnedByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]domain.Catalog, error) {
	if len(ids) == 0 {
		return []domain.Catalog{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getOwnedByIDsSQL, ownerID, ids)
	if err != nil {
		return nil, fmt.Errorf("get owned catalogs: %w", err)
	}
	defer rows.Close()

	return scanCatalogs(rows)
}

// LinkFlashcard adds a flashcard to a catalog. Idempotent.
func (r *Repo) LinkFlashcard(ctx context.Context, catalogID, flashcardID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, linkFlashcardSQL, catalogID, flashcardID); err != nil {
		return postgres.MapError(err, "catalog_flashcard", catalogID)
	}
	return nil
}

// SetVisibility updates a catalog's visibility. Owner only.
// Returns domain.ErrNotFound if the catalog does not exist or is foreign.
func (r *Repo) SetVisibility(ctx context.Context, ownerID, catalogID uuid.UUID, v domain.Visibility) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setVisibilitySQL, catalogID, ownerID, v)
	if err != nil {
		return postgres.MapError(err, "catalog", catalogID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("catalog %s: %w", catalogID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a catalog owned by ownerID. Links, shares, and collection
// entries cascade via foreign keys.
func (r *Repo) Delete(ctx context.Context, ownerID, catalogID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteCatalogSQL, catalogID, ownerID)
	if err != nil {
		return postgres.MapError(err, "catalog", catalogID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("catalog %s: %w", catalogID, domain.ErrNotFound)
	}
	return nil
}

// ListAccessible returns every catalog the user can read.
func (r *Repo) ListAccessible(ctx context.Context, userID uuid.UUID) ([]domain.Catalog, error) {
	return r.list(ctx, listAccessibleSQL, userID)
}

// ListCollection returns the user's personal working set of catalogs.
func (r *Repo) ListCollection(ctx context.Context, userID uuid.UUID) ([]domain.Catalog, error) {
	return r.list(ctx, listCollectionSQL, userID)
}

// ExclusiveFlashcardIDs returns the owner's flashcards linked only to this
// catalog, candidates for cascade deletion alongside it.
func (r *Repo) ExclusiveFlashcardIDs(ctx context.Context, catalogID, ownerID uuid.UUID) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, exclusiveFlashcardIDsSQL, catalogID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("exclusive flashcard ids: %w", err)
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan flashcard id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate flashcard ids: %w", err)
	}

	return ids, nil
}

func (r *Repo) list(ctx context.Context, sql string, userID uuid.UUID) ([]domain.Catalog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	defer rows.Close()

	return scanCatalogs(rows)
}

func scanCatalogs(rows pgx.Rows) ([]domain.Catalog, error) {
	catalogs := []domain.Catalog{}
	for rows.Next() {
		c, err := scanCatalogRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan catalog: %w", err)
		}
		catalogs = append(catalogs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalogs: %w", err)
	}
	return catalogs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCatalogRow(row rowScanner) (domain.Catalog, error) {
	var c domain.Catalog
	var visibility string
	err := row.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Description,
		&c.Language, &visibility, &c.CreatedAt)
	if err != nil {
		return domain.Catalog{}, err
	}
	c.Visibility = domain.Visibility(visibility)
	return c, nil
}
