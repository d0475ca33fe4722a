package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ collectionRepo = &collectionRepoMock{}

type collectionRepoMock struct {
	AddFunc func(ctx context.Context, userID, catalogID uuid.UUID) (bool, error)

	RemoveFunc func(ctx context.Context, userID, catalogID uuid.UUID) error

	calls struct {
		Add []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			CatalogID uuid.UUID
		}
		Remove []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			CatalogID uuid.UUID
		}
	}
	lockAdd    sync.RWMutex
	lockRemove sync.RWMutex
}

func (mock *collectionRepoMock) Add(ctx context.Context, userID, catalogID uuid.UUID) (bool, error) {
	if mock.AddFunc == nil {
		panic("collectionRepoMock.AddFunc: method is nil but collectionRepo.Add was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		CatalogID uuid.UUID
	}{Ctx: ctx, UserID: userID, CatalogID: catalogID}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, userID, catalogID)
}

func (mock *collectionRepoMock) AddCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	CatalogID uuid.UUID
} {
	mock.lockAdd.RLock()
	calls := mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

func (mock *collectionRepoMock) Remove(ctx context.Context, userID, catalogID uuid.UUID) error {
	if mock.RemoveFunc == nil {
		panic("collectionRepoMock.RemoveFunc: method is nil but collectionRepo.Remove was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		CatalogID uuid.UUID
	}{Ctx: ctx, UserID: userID, CatalogID: catalogID}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, userID, catalogID)
}

func (mock *collectionRepoMock) RemoveCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	CatalogID uuid.UUID
} {
	mock.lockRemove.RLock()
	calls := mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}
