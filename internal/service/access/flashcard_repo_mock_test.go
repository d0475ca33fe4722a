package access

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/domain"
)

var _ flashcardRepo = &flashcardRepoMock{}

type flashcardRepoMock struct {
	ListAccessibleFunc func(ctx context.Context, userID uuid.UUID, language *string) ([]domain.FlashcardWithAuthor, error)

	calls struct {
		ListAccessible []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			Language *string
		}
	}
	lockListAccessible sync.RWMutex
}

func (mock *flashcardRepoMock) ListAccessible(ctx context.Context, userID uuid.UUID, language *string) ([]domain.FlashcardWithAuthor, error) {
	if mock.ListAccessibleFunc == nil {
		panic("flashcardRepoMock.ListAccessibleFunc: method is nil but flashcardRepo.ListAccessible was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		Language *string
	}{Ctx: ctx, UserID: userID, Language: language}
	mock.lockListAccessible.Lock()
	mock.calls.ListAccessible = append(mock.calls.ListAccessible, callInfo)
	mock.lockListAccessible.Unlock()
	return mock.ListAccessibleFunc(ctx, userID, language)
}

func (mock *flashcardRepoMock) ListAccessibleCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	Language *string
} {
	mock.lockListAccessible.RLock()
	calls := mock.calls.ListAccessible
	mock.lockListAccessible.RUnlock()
	return calls
}
