package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/domain"
)

var _ flashcardRepo = &flashcardRepoMock{}

type flashcardRepoMock struct {
	GetOwnedByIDsFunc func(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]domain.Flashcard, error)

	DeleteFunc func(ctx context.Context, ownerID, id uuid.UUID) error

	calls struct {
		GetOwnedByIDs []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			IDs     []uuid.UUID
		}
		Delete []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
	}
	lockGetOwnedByIDs sync.RWMutex
	lockDelete        sync.RWMutex
}

func (mock *flashcardRepoMock) GetOwnedByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]domain.Flashcard, error) {
	if mock.GetOwnedByIDsFunc == nil {
		panic("flashcardRepoMock.GetOwnedByIDsFunc: method is nil but flashcardRepo.GetOwnedByIDs was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		IDs     []uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, IDs: ids}
	mock.lockGetOwnedByIDs.Lock()
	mock.calls.GetOwnedByIDs = append(mock.calls.GetOwnedByIDs, callInfo)
	mock.lockGetOwnedByIDs.Unlock()
	return mock.GetOwnedByIDsFunc(ctx, ownerID, ids)
}

func (mock *flashcardRepoMock) GetOwnedByIDsCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	IDs     []uuid.UUID
} {
	mock.lockGetOwnedByIDs.RLock()
	calls := mock.calls.GetOwnedByIDs
	mock.lockGetOwnedByIDs.RUnlock()
	return calls
}

func (mock *flashcardRepoMock) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("flashcardRepoMock.DeleteFunc: method is nil but flashcardRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, ownerID, id)
}

func (mock *flashcardRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
