package flashcard

import (
	"context"
	"fmt"

	"github.com/heartmarshall/cerego-backend/internal/domain"
	"github.com/heartmarshall/cerego-backend/pkg/ctxutil"
)

// List returns the requester's flashcards together with cards shared with
// them, each annotated with the author's display name. An optional
// language narrows the result.
func (s *Service) List(ctx context.Context, language *string) ([]domain.FlashcardWithAuthor, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	cards, err := s.flashcards.ListAccessible(ctx, userID, language)
	if err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}
	return cards, nil
}

// Stats summarizes the requester's study progress: total cards, cards due
// for review, and average memory strength.
func (s *Service) Stats(ctx context.Context) (domain.FlashcardStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.FlashcardStats{}, domain.ErrUnauthorized
	}

	stats, err := s.progress.Stats(ctx, userID)
	if err != nil {
		return domain.FlashcardStats{}, fmt.Errorf("flashcard stats: %w", err)
	}
	return stats, nil
}
