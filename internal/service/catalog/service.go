// Package catalog manages named flashcard collections: creation with
// content invariants, visibility, sharing, and per-user collection
// membership.
package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/domain"
)

// --- dependencies ---

type catalogRepo interface {
	Create(ctx context.Context, c domain.Catalog) (domain.Catalog, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Catalog, error)
	LinkFlashcard(ctx context.Context, catalogID, flashcardID uuid.UUID) error
	SetVisibility(ctx context.Context, ownerID, catalogID uuid.UUID, v domain.Visibility) error
	Delete(ctx context.Context, ownerID, catalogID uuid.UUID) error
	ExclusiveFlashcardIDs(ctx context.Context, catalogID, ownerID uuid.UUID) ([]uuid.UUID, error)
}

type flashcardRepo interface {
	GetOwnedByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]domain.Flashcard, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type shareRepo interface {
	AddCatalogShare(ctx context.Context, catalogID, sharedWithID uuid.UUID) (bool, error)
	RemoveCatalogShare(ctx context.Context, catalogID, sharedWithID uuid.UUID) error
	CatalogSharedWith(ctx context.Context, catalogID, userID uuid.UUID) (bool, error)
}

type collectionRepo interface {
	Add(ctx context.Context, userID, catalogID uuid.UUID) (bool, error)
	Remove(ctx context.Context, userID, catalogID uuid.UUID) error
}

type userRepo interface {
	GetByEmails(ctx context.Context, emails []string) ([]domain.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// --- service ---

// Service implements catalog operations.
type Service struct {
	catalogs   catalogRepo
	flashcards flashcardRepo
	shares     shareRepo
	collection collectionRepo
	users      userRepo
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Catalog service.
func NewService(
	log *slog.Logger,
	catalogs catalogRepo,
	flashcards flashcardRepo,
	shares shareRepo,
	collection collectionRepo,
	users userRepo,
	tx txManager,
) *Service {
	return &Service{
		catalogs:   catalogs,
		flashcards: flashcards,
		shares:     shares,
		collection: collection,
		users:      users,
		tx:         tx,
		log:        log.With("service", "catalog"),
	}
}
