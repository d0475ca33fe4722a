package flashcard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/domain"
	"github.com/heartmarshall/cerego-backend/pkg/ctxutil"
)

// Delete removes a flashcard for the requester. The owner deletes the
// card itself, cascading to catalog links, shares, quizzes, and study
// state. A share recipient only removes their own share; the card
// survives for everyone else. A requester with no relation to the card
// gets ErrForbidden.
func (s *Service) Delete(ctx context.Context, flashcardID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	card, err := s.flashcards.GetByID(ctx, flashcardID)
	if err != nil {
		return fmt.Errorf("get flashcard: %w", err)
	}

	if card.OwnerID == userID {
		if err := s.flashcards.Delete(ctx, userID, flashcardID); err != nil {
			return fmt.Errorf("delete flashcard: %w", err)
		}
		s.log.InfoContext(ctx, "flashcard deleted",
			slog.String("flashcard_id", flashcardID.String()),
		)
		return nil
	}

	err = s.shares.RemoveFlashcardShare(ctx, flashcardID, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("flashcard %s is not accessible to the requester: %w", flashcardID, domain.ErrForbidden)
	}
	if err != nil {
		return fmt.Errorf("remove share: %w", err)
	}

	s.log.InfoContext(ctx, "flashcard share removed",
		slog.String("flashcard_id", flashcardID.String()),
		slog.String("user_id", userID.String()),
	)
	return nil
}
