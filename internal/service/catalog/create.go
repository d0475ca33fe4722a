package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/domain"
	"github.com/heartmarshall/cerego-backend/pkg/ctxutil"
)

// Create makes a new catalog from flashcards the requester already owns.
// The catalog and all its links are created atomically: a failure on any
// flashcard leaves no catalog behind.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Catalog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Catalog{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return domain.Catalog{}, err
	}

	cards, err := s.checkFlashcards(ctx, userID, input)
	if err != nil {
		return domain.Catalog{}, err
	}

	var created domain.Catalog
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		c, err := s.catalogs.Create(ctx, domain.Catalog{
			OwnerID:     userID,
			Name:        strings.TrimSpace(input.Name),
			Description: input.Description,
			Language:    input.Language,
			Visibility:  input.Visibility,
		})
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return fmt.Errorf("catalog name %q is taken: %w", input.Name, domain.ErrConflict)
			}
			return fmt.Errorf("create catalog: %w", err)
		}
		for _, card := range cards {
			if err := s.catalogs.LinkFlashcard(ctx, c.ID, card.ID); err != nil {
				return fmt.Errorf("link flashcard %s: %w", card.ID, err)
			}
		}
		created = c
		return nil
	})
	if err != nil {
		return domain.Catalog{}, err
	}

	s.log.InfoContext(ctx, "catalog created",
		slog.String("catalog_id", created.ID.String()),
		slog.String("owner_id", userID.String()),
		slog.Int("flashcards", len(cards)),
	)
	return created, nil
}

// checkFlashcards loads the requested flashcards and enforces the content
// invariants: every card is owned by the requester, matches the catalog
// language, and no two cards share a normalized front.
func (s *Service) checkFlashcards(ctx context.Context, userID uuid.UUID, input CreateInput) ([]domain.Flashcard, error) {
	if len(input.FlashcardIDs) == 0 {
		return nil, nil
	}

	cards, err := s.flashcards.GetOwnedByIDs(ctx, userID, input.FlashcardIDs)
	if err != nil {
		return nil, fmt.Errorf("load flashcards: %w", err)
	}
	owned := make(map[uuid.UUID]bool, len(cards))
	for _, c := range cards {
		owned[c.ID] = true
	}
	for _, id := range input.FlashcardIDs {
		if !owned[id] {
			return nil, fmt.Errorf("flashcard %s is not owned by the requester: %w", id, domain.ErrForbidden)
		}
	}

	byFront := make(map[string][]uuid.UUID, len(cards))
	for _, c := range cards {
		if !strings.EqualFold(c.Language, input.Language) {
			return nil, domain.NewValidationError("flashcard_ids",
				fmt.Sprintf("flashcard %s is %s, catalog is %s", c.ID, c.Language, input.Language))
		}
		front := domain.NormalizeFront(c.Front)
		byFront[front] = append(byFront[front], c.ID)
	}

	var dups []domain.DuplicateFront
	for front, ids := range byFront {
		if len(ids) > 1 {
			dups = append(dups, domain.DuplicateFront{Front: front, FlashcardIDs: ids})
		}
	}
	if len(dups) > 0 {
		return nil, &domain.DuplicateFrontError{Duplicates: dups}
	}

	return cards, nil
}
