package flashcard

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/domain"
)

var _ progressRepo = &progressRepoMock{}

type progressRepoMock struct {
	StatsFunc func(ctx context.Context, userID uuid.UUID) (domain.FlashcardStats, error)

	calls struct {
		Stats []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockStats sync.RWMutex
}

func (mock *progressRepoMock) Stats(ctx context.Context, userID uuid.UUID) (domain.FlashcardStats, error) {
	if mock.StatsFunc == nil {
		panic("progressRepoMock.StatsFunc: method is nil but progressRepo.Stats was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx, userID)
}

func (mock *progressRepoMock) StatsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}
