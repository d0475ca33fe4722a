// Package progress implements the per-user study-state repository
// (user_flashcards rows: memory strength and review timestamps).
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/cerego-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cerego-backend/internal/domain"
)

// Repo provides study-state persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new progress repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getOrCreateSQL = `
INSERT INTO user_flashcards (id, user_id, flashcard_id, memory_strength)
VALUES ($1, $2, $3, 0)
ON CONFLICT (user_id, flashcard_id) DO UPDATE SET user_id = EXCLUDED.user_id
RETURNING id, user_id, flashcard_id, memory_strength, last_reviewed, next_review`

const updateReviewSQL = `
UPDATE user_flashcards
SET memory_strength = $3, last_reviewed = $4, next_review = $5
WHERE user_id = $1 AND flashcard_id = $2`

const statsSQL = `
SELECT
  (SELECT count(*) FROM flashcards WHERE owner_id = $1)
  + (SELECT count(*) FROM flashcard_shares WHERE shared_with_id = $1),
  (SELECT count(*) FROM user_flashcards
   WHERE user_id = $1 AND next_review IS NOT NULL AND next_review <= now()),
  COALESCE((SELECT avg(memory_strength) FROM user_flashcards WHERE user_id = $1), 0)`

// GetOrCreate returns the user's study state for a flashcard, creating a
// zeroed row the first time the card is studied.
func (r *Repo) GetOrCreate(ctx context.Context, userID, flashcardID uuid.UUID) (domain.StudyState, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var s domain.StudyState
	err := q.QueryRow(ctx, getOrCreateSQL, uuid.New(), userID, flashcardID).
		Scan(&s.ID, &s.UserID, &s.FlashcardID, &s.MemoryStrength, &s.LastReviewed, &s.NextReview)
	if err != nil {
		return domain.StudyState{}, postgres.MapError(err, "study_state", flashcardID)
	}
	return s, nil
}

// UpdateReview stores the outcome of one review event.
func (r *Repo) UpdateReview(ctx context.Context, userID, flashcardID uuid.UUID, strength float64, reviewedAt, nextReview time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateReviewSQL, userID, flashcardID, strength, reviewedAt, nextReview)
	if err != nil {
		return postgres.MapError(err, "study_state", flashcardID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("study state %s: %w", flashcardID, domain.ErrNotFound)
	}
	return nil
}

// Stats returns the user's dashboard counters.
func (r *Repo) Stats(ctx context.Context, userID uuid.UUID) (domain.FlashcardStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var s domain.FlashcardStats
	err := q.QueryRow(ctx, statsSQL, userID).
		Scan(&s.TotalCards, &s.CardsToReview, &s.AverageLevel)
	if err != nil {
		return domain.FlashcardStats{}, fmt.Errorf("flashcard stats: %w", err)
	}
	return s, nil
}
