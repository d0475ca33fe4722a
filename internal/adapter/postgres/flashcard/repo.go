// Package flashcard implements the Flashcard repository using PostgreSQL.
// Simple CRUD uses raw SQL constants; the accessible-set query with its
// optional language filter is built with squirrel.
package flashcard

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/cerego-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cerego-backend/internal/domain"
)

// Repo provides flashcard persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new flashcard repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const cardColumns = `id, owner_id, front, back, language, created_at`

const createFlashcardSQL = `
INSERT INTO flashcards (id, owner_id, front, back, language, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + cardColumns

const getByIDSQL = `
SELECT ` + cardColumns + `
FROM flashcards
WHERE id = $1`

const getOwnedByIDsSQL = `
SELECT ` + cardColumns + `
FROM flashcards
WHERE owner_id = $1 AND id = ANY($2::uuid[])`

const ownedFrontsSQL = `
SELECT DISTINCT lower(regexp_replace(btrim(front), '\s+', ' ', 'g'))
FROM flashcards
WHERE owner_id = $1
  AND lower(regexp_replace(btrim(front), '\s+', ' ', 'g')) = ANY($2::text[])`

const deleteOwnedSQL = `
DELETE FROM flashcards
WHERE id = $1 AND owner_id = $2`

// Create inserts a new flashcard and returns the persisted row.
func (r *Repo) Create(ctx context.Context, ownerID uuid.UUID, front, back, language string) (domain.Flashcard, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	var c domain.Flashcard
	err := q.QueryRow(ctx, createFlashcardSQL, id, ownerID, front, back, language, now).
		Scan(&c.ID, &c.OwnerID, &c.Front, &c.Back, &c.Language, &c.CreatedAt)
	if err != nil {
		return domain.Flashcard{}, postgres.MapError(err, "flashcard", id)
	}
	return c, nil
}

// GetByID returns a flashcard by primary key without access filtering;
// authorization is the service layer's concern.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Flashcard, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.Flashcard
	err := q.QueryRow(ctx, getByIDSQL, id).
		Scan(&c.ID, &c.OwnerID, &c.Front, &c.Back, &c.Language, &c.CreatedAt)
	if err != nil {
		return domain.Flashcard{}, postgres.MapError(err, "flashcard", id)
	}
	return c, nil
}

// GetOwnedByIDs returns the subset of the given flashcards owned by ownerID.
// Callers compare result length against the request to detect foreign IDs.
func (r *Repo) GetOwnedByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]domain.Flashcard, error) {
	if len(ids) == 0 {
		return []domain.Flashcard{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getOwnedByIDsSQL, ownerID, ids)
	if err != nil {
		return nil, fmt.Errorf("get owned flashcards: %w", err)
	}
	defer rows.Close()

	return scanCards(rows)
}

// OwnedFronts returns which of the given normalized fronts already exist
// among the owner's flashcards (duplicate precheck before import). Stored
// fronts are normalized the same way as domain.NormalizeFront: trimmed,
// lowercased, inner whitespace collapsed. Results come back in normalized
// form so callers can match them against their input keys directly.
func (r *Repo) OwnedFronts(ctx context.Context, ownerID uuid.UUID, normalizedFronts []string) ([]string, error) {
	if len(normalizedFronts) == 0 {
		return []string{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, ownedFrontsSQL, ownerID, normalizedFronts)
	if err != nil {
		return nil, fmt.Errorf("owned fronts: %w", err)
	}
	defer rows.Close()

	fronts := []string{}
	for rows.Next() {
		var f string
		if err := rows.Scan(&f); err != nil {
			return nil, fmt.Errorf("scan front: %w", err)
		}
		fronts = append(fronts, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fronts: %w", err)
	}

	return fronts, nil
}

// ListAccessible returns all flashcards a user can read, joined with the
// owner's display name. language narrows the result when non-nil.
func (r *Repo) ListAccessible(ctx context.Context, userID uuid.UUID, language *string) ([]domain.FlashcardWithAuthor, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := psql.
		Select("f.id", "f.owner_id", "f.front", "f.back", "f.language", "f.created_at",
			"COALESCE(u.display_name, u.email)").
		From("flashcards f").
		Join("users u ON u.id = f.owner_id").
		Where(sq.Or{
			sq.Eq{"f.owner_id": userID},
			sq.Expr(`EXISTS (SELECT 1 FROM flashcard_shares fs
				WHERE fs.flashcard_id = f.id AND fs.shared_with_id = ?)`, userID),
			sq.Expr(`EXISTS (SELECT 1 FROM catalog_flashcards cf
				JOIN catalogs c ON c.id = cf.catalog_id
				WHERE cf.flashcard_id = f.id
				  AND (c.owner_id = ?
				       OR c.visibility = 'PUBLIC'
				       OR EXISTS (SELECT 1 FROM catalog_shares cs
				                  WHERE cs.catalog_id = c.id AND cs.shared_with_id = ?)))`,
				userID, userID),
		}).
		OrderBy("f.created_at DESC")

	if language != nil && *language != "" {
		builder = builder.Where(sq.Eq{"f.language": *language})
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build accessible query: %w", err)
	}

	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list accessible flashcards: %w", err)
	}
	defer rows.Close()

	cards := []domain.FlashcardWithAuthor{}
	for rows.Next() {
		var c domain.FlashcardWithAuthor
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Front, &c.Back, &c.Language,
			&c.CreatedAt, &c.AuthorName); err != nil {
			return nil, fmt.Errorf("scan flashcard: %w", err)
		}
		c.IsOwner = c.OwnerID == userID
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate flashcards: %w", err)
	}

	return cards, nil
}

// Delete removes a flashcard owned by ownerID. Cascades (catalog links,
// shares, quizzes, study state) are handled by foreign keys.
// Returns domain.ErrNotFound if the card does not exist or is foreign.
func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteOwnedSQL, id, ownerID)
	if err != nil {
		return postgres.MapError(err, "flashcard", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("flashcard %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanCards(rows pgx.Rows) ([]domain.Flashcard, error) {
	cards := []domain.Flashcard{}
	for rows.Next() {
		var c domain.Flashcard
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Front, &c.Back, &c.Language, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan flashcard: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate flashcards: %w", err)
	}
	return cards, nil
}
