package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/domain"
	"github.com/heartmarshall/cerego-backend/pkg/ctxutil"
)

// Memory strength shifts by at most this much per review.
const strengthStep = 0.2

// RecordScore stores a completed quiz attempt (score in percent, 0-100)
// and advances the spaced-repetition state of the underlying flashcard.
// Both writes happen in one transaction.
func (s *Service) RecordScore(ctx context.Context, quizID uuid.UUID, score float64) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if score < 0 || score > 100 {
		return domain.NewValidationError("score", "must be between 0 and 100")
	}

	q, err := s.quizzes.GetByID(ctx, quizID)
	if err != nil {
		return fmt.Errorf("get quiz: %w", err)
	}
	if q.UserID != userID {
		return fmt.Errorf("quiz %s does not belong to the requester: %w", quizID, domain.ErrForbidden)
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.quizzes.RecordScore(ctx, userID, quizID, score); err != nil {
			return fmt.Errorf("record score: %w", err)
		}

		state, err := s.progress.GetOrCreate(ctx, userID, q.FlashcardID)
		if err != nil {
			return fmt.Errorf("load study state: %w", err)
		}

		now := s.now().UTC()
		strength := nextStrength(state.MemoryStrength, score)
		next := now.Add(reviewInterval(strength))
		if err := s.progress.UpdateReview(ctx, userID, q.FlashcardID, strength, now, next); err != nil {
			return fmt.Errorf("update study state: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "quiz attempt recorded",
		slog.String("quiz_id", quizID.String()),
		slog.Float64("score", score),
	)
	return nil
}

// nextStrength moves memory strength toward 1 on a strong score and
// toward 0 on a weak one, clamped to [0, 1]. A score of 50% leaves the
// strength unchanged.
func nextStrength(current, score float64) float64 {
	next := current + (score/100-0.5)*2*strengthStep
	if next < 0 {
		return 0
	}
	if next > 1 {
		return 1
	}
	return next
}

// reviewInterval widens with memory strength: one day at zero strength,
// thirty days when fully learned.
func reviewInterval(strength float64) time.Duration {
	days := 1 + strength*29
	return time.Duration(days * float64(24*time.Hour))
}
