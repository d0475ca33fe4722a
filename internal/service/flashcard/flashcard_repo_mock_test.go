package flashcard

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/domain"
)

var _ flashcardRepo = &flashcardRepoMock{}

type flashcardRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (domain.Flashcard, error)

	ListAccessibleFunc func(ctx context.Context, userID uuid.UUID, language *string) ([]domain.FlashcardWithAuthor, error)

	OwnedFrontsFunc func(ctx context.Context, ownerID uuid.UUID, normalizedFronts []string) ([]string, error)

	DeleteFunc func(ctx context.Context, ownerID, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListAccessible []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			Language *string
		}
		OwnedFronts []struct {
			Ctx              context.Context
			OwnerID          uuid.UUID
			NormalizedFronts []string
		}
		Delete []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
	}
	lockGetByID        sync.RWMutex
	lockListAccessible sync.RWMutex
	lockOwnedFronts    sync.RWMutex
	lockDelete         sync.RWMutex
}

func (mock *flashcardRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Flashcard, error) {
	if mock.GetByIDFunc == nil {
		panic("flashcardRepoMock.GetByIDFunc: method is nil but flashcardRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *flashcardRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
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

func (mock *flashcardRepoMock) OwnedFronts(ctx context.Context, ownerID uuid.UUID, normalizedFronts []string) ([]string, error) {
	if mock.OwnedFrontsFunc == nil {
		panic("flashcardRepoMock.OwnedFrontsFunc: method is nil but flashcardRepo.OwnedFronts was just called")
	}
	callInfo := struct {
		Ctx              context.Context
		OwnerID          uuid.UUID
		NormalizedFronts []string
	}{Ctx: ctx, OwnerID: ownerID, NormalizedFronts: normalizedFronts}
	mock.lockOwnedFronts.Lock()
	mock.calls.OwnedFronts = append(mock.calls.OwnedFronts, callInfo)
	mock.lockOwnedFronts.Unlock()
	return mock.OwnedFrontsFunc(ctx, ownerID, normalizedFronts)
}

func (mock *flashcardRepoMock) OwnedFrontsCalls() []struct {
	Ctx              context.Context
	OwnerID          uuid.UUID
	NormalizedFronts []string
} {
	mock.lockOwnedFronts.RLock()
	calls := mock.calls.OwnedFronts
	mock.lockOwnedFronts.RUnlock()
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
