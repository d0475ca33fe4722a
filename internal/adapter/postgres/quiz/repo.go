// Package quiz implements the Quiz and QuizType repositories.
package quiz

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/cerego-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cerego-backend/internal/domain"
)

// Repo provides quiz persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new quiz repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const listTypesSQL = `
SELECT id, name FROM quiz_types ORDER BY name`

const getTypeByNameSQL = `
SELECT id, name FROM quiz_types WHERE name = $1`

const createQuizSQL = `
INSERT INTO quizzes (id, user_id, flashcard_id, quiz_type_id, language, content, score, completed_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`

const getQuizByIDSQL = `
SELECT id, user_id, flashcard_id, quiz_type_id, language, content, score, completed_at, created_at
FROM quizzes
WHERE id = $1`

const listByUserSQL = `
SELECT q.id, q.user_id, q.flashcard_id, q.quiz_type_id, q.language,
       q.content, q.score, q.completed_at, q.created_at
FROM quizzes q
WHERE q.user_id = $1
ORDER BY q.created_at DESC
LIMIT $2`

const recordScoreSQL = `
UPDATE quizzes
SET score = $3, completed_at = now()
WHERE id = $1 AND user_id = $2`

// ListTypes returns the fixed quiz taxonomy.
func (r *Repo) ListTypes(ctx context.Context) ([]domain.QuizType, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listTypesSQL)
	if err != nil {
		return nil, fmt.Errorf("list quiz types: %w", err)
	}
	defer rows.Close()

	types := []domain.QuizType{}
	for rows.Next() {
		var qt domain.QuizType
		var name string
		if err := rows.Scan(&qt.ID, &name); err != nil {
			return nil, fmt.Errorf("scan quiz type: %w", err)
		}
		qt.Name = domain.QuizKind(name)
		types = append(types, qt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quiz types: %w", err)
	}

	return types, nil
}

// GetTypeByName resolves a quiz kind against the reference table.
// Unknown names yield domain.ErrNotFound.
func (r *Repo) GetTypeByName(ctx context.Context, kind domain.QuizKind) (domain.QuizType, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var qt domain.QuizType
	var name string
	if err := q.QueryRow(ctx, getTypeByNameSQL, kind.String()).Scan(&qt.ID, &name); err != nil {
		return domain.QuizType{}, postgres.MapError(err, "quiz_type", uuid.Nil)
	}
	qt.Name = domain.QuizKind(name)
	return qt, nil
}

// Create inserts a generated quiz row and returns its ID.
func (r *Repo) Create(ctx context.Context, quiz domain.Quiz) (uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if quiz.ID == uuid.Nil {
		quiz.ID = uuid.New()
	}
	now := time.Now().UTC().Truncate(time.Microsecond)

	var id uuid.UUID
	err := q.QueryRow(ctx, createQuizSQL,
		quiz.ID, quiz.UserID, quiz.FlashcardID, quiz.QuizTypeID, quiz.Language,
		quiz.Content, quiz.Score, quiz.CompletedAt, now).Scan(&id)
	if err != nil {
		return uuid.Nil, postgres.MapError(err, "quiz", quiz.ID)
	}
	return id, nil
}

// GetByID returns a quiz by primary key without access filtering.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Quiz, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var qz domain.Quiz
	err := q.QueryRow(ctx, getQuizByIDSQL, id).Scan(&qz.ID, &qz.UserID, &qz.FlashcardID,
		&qz.QuizTypeID, &qz.Language, &qz.Content, &qz.Score, &qz.CompletedAt, &qz.CreatedAt)
	if err != nil {
		return domain.Quiz{}, postgres.MapError(err, "quiz", id)
	}
	return qz, nil
}

// ListByUser returns a user's quiz history, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Quiz, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByUserSQL, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}
	defer rows.Close()

	quizzes := []domain.Quiz{}
	for rows.Next() {
		var qz domain.Quiz
		if err := rows.Scan(&qz.ID, &qz.UserID, &qz.FlashcardID, &qz.QuizTypeID,
			&qz.Language, &qz.Content, &qz.Score, &qz.CompletedAt, &qz.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan quiz: %w", err)
		}
		quizzes = append(quizzes, qz)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quizzes: %w", err)
	}

	return quizzes, nil
}

// RecordScore stores the user's score for a completed quiz attempt.
func (r *Repo) RecordScore(ctx context.Context, userID, quizID uuid.UUID, score float64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, recordScoreSQL, quizID, userID, score)
	if err != nil {
		return postgres.MapError(err, "quiz", quizID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("quiz %s: %w", quizID, domain.ErrNotFound)
	}
	return nil
}
