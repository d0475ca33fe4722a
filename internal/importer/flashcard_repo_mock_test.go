package importer

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/domain"
)

var _ flashcardRepo = &flashcardRepoMock{}

type flashcardRepoMock struct {
	CreateFunc  func(ctx context.Context, ownerID uuid.UUID, front, back, language string) (domain.Flashcard, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (domain.Flashcard, error)

	calls struct {
		Create []struct {
			Ctx      context.Context
			OwnerID  uuid.UUID
			Front    string
			Back     string
			Language string
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
}

func (mock *flashcardRepoMock) Create(ctx context.Context, ownerID uuid.UUID, front, back, language string) (domain.Flashcard, error) {
	if mock.CreateFunc == nil {
		panic("flashcardRepoMock.CreateFunc: method is nil but flashcardRepo.Create was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		OwnerID  uuid.UUID
		Front    string
		Back     string
		Language string
	}{Ctx: ctx, OwnerID: ownerID, Front: front, Back: back, Language: language}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ownerID, front, back, language)
}

func (mock *flashcardRepoMock) CreateCalls() []struct {
	Ctx      context.Context
	OwnerID  uuid.UUID
	Front    string
	Back     string
	Language string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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
