package flashcard

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ shareRepo = &shareRepoMock{}

type shareRepoMock struct {
	AddFlashcardShareFunc func(ctx context.Context, flashcardID, sharedWithID uuid.UUID) (bool, error)

	RemoveFlashcardShareFunc func(ctx context.Context, flashcardID, sharedWithID uuid.UUID) error

	calls struct {
		AddFlashcardShare []struct {
			Ctx          context.Context
			FlashcardID  uuid.UUID
			SharedWithID uuid.UUID
		}
		RemoveFlashcardShare []struct {
			Ctx          context.Context
			FlashcardID  uuid.UUID
			SharedWithID uuid.UUID
		}
	}
	lockAddFlashcardShare    sync.RWMutex
	lockRemoveFlashcardShare sync.RWMutex
}

func (mock *shareRepoMock) AddFlashcardShare(ctx context.Context, flashcardID, sharedWithID uuid.UUID) (bool, error) {
	if mock.AddFlashcardShareFunc == nil {
		panic("shareRepoMock.AddFlashcardShareFunc: method is nil but shareRepo.AddFlashcardShare was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		FlashcardID  uuid.UUID
		SharedWithID uuid.UUID
	}{Ctx: ctx, FlashcardID: flashcardID, SharedWithID: sharedWithID}
	mock.lockAddFlashcardShare.Lock()
	mock.calls.AddFlashcardShare = append(mock.calls.AddFlashcardShare, callInfo)
	mock.lockAddFlashcardShare.Unlock()
	return mock.AddFlashcardShareFunc(ctx, flashcardID, sharedWithID)
}

func (mock *shareRepoMock) AddFlashcardShareCalls() []struct {
	Ctx          context.Context
	FlashcardID  uuid.UUID
	SharedWithID uuid.UUID
} {
	mock.lockAddFlashcardShare.RLock()
	calls := mock.calls.AddFlashcardShare
	mock.lockAddFlashcardShare.RUnlock()
	return calls
}

func (mock *shareRepoMock) RemoveFlashcardShare(ctx context.Context, flashcardID, sharedWithID uuid.UUID) error {
	if mock.RemoveFlashcardShareFunc == nil {
		panic("shareRepoMock.RemoveFlashcardShareFunc: method is nil but shareRepo.RemoveFlashcardShare was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		FlashcardID  uuid.UUID
		SharedWithID uuid.UUID
	}{Ctx: ctx, FlashcardID: flashcardID, SharedWithID: sharedWithID}
	mock.lockRemoveFlashcardShare.Lock()
	mock.calls.RemoveFlashcardShare = append(mock.calls.RemoveFlashcardShare, callInfo)
	mock.lockRemoveFlashcardShare.Unlock()
	return mock.RemoveFlashcardShareFunc(ctx, flashcardID, sharedWithID)
}

func (mock *shareRepoMock) RemoveFlashcardShareCalls() []struct {
	Ctx          context.Context
	FlashcardID  uuid.UUID
	SharedWithID uuid.UUID
} {
	mock.lockRemoveFlashcardShare.RLock()
	calls := mock.calls.RemoveFlashcardShare
	mock.lockRemoveFlashcardShare.RUnlock()
	return calls
}
