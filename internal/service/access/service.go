// Package access resolves what a user may see: the closure of catalogs
// and flashcards across ownership, explicit shares, public visibility,
// and collection opt-ins.
package access

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/domain"
	"github.com/heartmarshall/cerego-backend/pkg/ctxutil"
)

type catalogRepo interface {
	ListAccessible(ctx context.Context, userID uuid.UUID) ([]domain.Catalog, error)
	ListCollection(ctx context.Context, userID uuid.UUID) ([]domain.Catalog, error)
}

type flashcardRepo interface {
	ListAccessible(ctx context.Context, userID uuid.UUID, language *string) ([]domain.FlashcardWithAuthor, error)
}

// Service answers visibility queries.
type Service struct {
	catalogs   catalogRepo
	flashcards flashcardRepo
	log        *slog.Logger
}

// NewService creates a new Access service.
func NewService(log *slog.Logger, catalogs catalogRepo, flashcards flashcardRepo) *Service {
	return &Service{
		catalogs:   catalogs,
		flashcards: flashcards,
		log:        log.With("service", "access"),
	}
}

// AccessibleCatalogs returns owned ∪ public ∪ shared-with-user catalogs.
func (s *Service) AccessibleCatalogs(ctx context.Context) ([]domain.Catalog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	catalogs, err := s.catalogs.ListAccessible(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list accessible catalogs: %w", err)
	}
	return catalogs, nil
}

// CollectionCatalogs returns the user's working set: owned ∪ shared ∪
// public catalogs the user explicitly added. A public catalog outside
// the collection stays accessible but is not part of this set.
func (s *Service) CollectionCatalogs(ctx context.Context) ([]domain.Catalog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	catalogs, err := s.catalogs.ListCollection(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list collection catalogs: %w", err)
	}
	return catalogs, nil
}

// AccessibleFlashcards returns owned flashcards plus those reachable
// through per-card shares or accessible catalogs, optionally filtered by
// language.
func (s *Service) AccessibleFlashcards(ctx context.Context, language *string) ([]domain.FlashcardWithAuthor, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	cards, err := s.flashcards.ListAccessible(ctx, userID, language)
	if err != nil {
		return nil, fmt.Errorf("list accessible flashcards: %w", err)
	}
	return cards, nil
}
