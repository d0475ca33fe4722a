// Package flashcard manages individual cards: listing, per-card sharing,
// deletion, study statistics, and the import prechecks (word extraction
// and duplicate detection).
package flashcard

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/domain"
)

// --- dependencies ---

type flashcardRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Flashcard, error)
	ListAccessible(ctx context.Context, userID uuid.UUID, language *string) ([]domain.FlashcardWithAuthor, error)
	OwnedFronts(ctx context.Context, ownerID uuid.UUID, normalizedFronts []string) ([]string, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type shareRepo interface {
	AddFlashcardShare(ctx context.Context, flashcardID, sharedWithID uuid.UUID) (bool, error)
	RemoveFlashcardShare(ctx context.Context, flashcardID, sharedWithID uuid.UUID) error
}

type userRepo interface {
	GetByEmails(ctx context.Context, emails []string) ([]domain.User, error)
}

type progressRepo interface {
	Stats(ctx context.Context, userID uuid.UUID) (domain.FlashcardStats, error)
}

// --- service ---

// Service implements flashcard operations.
type Service struct {
	flashcards flashcardRepo
	shares     shareRepo
	users      userRepo
	progress   progressRepo
	log        *slog.Logger
}

// NewService creates a new Flashcard service.
func NewService(
	log *slog.Logger,
	flashcards flashcardRepo,
	shares shareRepo,
	users userRepo,
	progress progressRepo,
) *Service {
	return &Service{
		flashcards: flashcards,
		shares:     shares,
		users:      users,
		progress:   progress,
		log:        log.With("service", "flashcard"),
	}
}
