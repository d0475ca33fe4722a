// Package quiz exposes the quiz taxonomy, per-user history, and manual
// attempt scoring with its spaced-repetition side effect.
package quiz

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/domain"
)

// --- dependencies ---

type quizRepo interface {
	ListTypes(ctx context.Context) ([]domain.QuizType, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Quiz, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Quiz, error)
	RecordScore(ctx context.Context, userID, quizID uuid.UUID, score float64) error
}

type progressRepo interface {
	GetOrCreate(ctx context.Context, userID, flashcardID uuid.UUID) (domain.StudyState, error)
	UpdateReview(ctx context.Context, userID, flashcardID uuid.UUID, strength float64, reviewedAt, nextReview time.Time) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// --- service ---

// Service implements quiz operations.
type Service struct {
	quizzes  quizRepo
	progress progressRepo
	tx       txManager
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new Quiz service.
func NewService(log *slog.Logger, quizzes quizRepo, progress progressRepo, tx txManager) *Service {
	return &Service{
		quizzes:  quizzes,
		progress: progress,
		tx:       tx,
		log:      log.With("service", "quiz"),
		now:      time.Now,
	}
}
