package quiz

import (
	"context"
	"fmt"

	"github.com/heartmarshall/cerego-backend/internal/domain"
	"github.com/heartmarshall/cerego-backend/pkg/ctxutil"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// ListTypes returns the fixed quiz taxonomy.
func (s *Service) ListTypes(ctx context.Context) ([]domain.QuizType, error) {
	types, err := s.quizzes.ListTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quiz types: %w", err)
	}
	return types, nil
}

// History returns the requester's generated quizzes, newest first.
// A non-positive limit falls back to the default; oversized limits are
// clamped.
func (s *Service) History(ctx context.Context, limit int) ([]domain.Quiz, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	quizzes, err := s.quizzes.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list quiz history: %w", err)
	}
	return quizzes, nil
}
