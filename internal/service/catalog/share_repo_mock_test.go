package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ shareRepo = &shareRepoMock{}

type shareRepoMock struct {
	AddCatalogShareFunc func(ctx context.Context, catalogID, sharedWithID uuid.UUID) (bool, error)

	RemoveCatalogShareFunc func(ctx context.Context, catalogID, sharedWithID uuid.UUID) error

	CatalogSharedWithFunc func(ctx context.Context, catalogID, userID uuid.UUID) (bool, error)

	calls struct {
		AddCatalogShare []struct {
			Ctx          context.Context
			CatalogID    uuid.UUID
			SharedWithID uuid.UUID
		}
		RemoveCatalogShare []struct {
			Ctx          context.Context
			CatalogID    uuid.UUID
			SharedWithID uuid.UUID
		}
		CatalogSharedWith []struct {
			Ctx       context.Context
			CatalogID uuid.UUID
			UserID    uuid.UUID
		}
	}
	lockAddCatalogShare    sync.RWMutex
	lockRemoveCatalogShare sync.RWMutex
	lockCatalogSharedWith  sync.RWMutex
}

func (mock *shareRepoMock) AddCatalogShare(ctx context.Context, catalogID, sharedWithID uuid.UUID) (bool, error) {
	if mock.AddCatalogShareFunc == nil {
		panic("shareRepoMock.AddCatalogShareFunc: method is nil but shareRepo.AddCatalogShare was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		CatalogID    uuid.UUID
		SharedWithID uuid.UUID
	}{Ctx: ctx, CatalogID: catalogID, SharedWithID: sharedWithID}
	mock.lockAddCatalogShare.Lock()
	mock.calls.AddCatalogShare = append(mock.calls.AddCatalogShare, callInfo)
	mock.lockAddCatalogShare.Unlock()
	return mock.AddCatalogShareFunc(ctx, catalogID, sharedWithID)
}

func (mock *shareRepoMock) AddCatalogShareCalls() []struct {
	Ctx          context.Context
	CatalogID    uuid.UUID
	SharedWithID uuid.UUID
} {
	mock.lockAddCatalogShare.RLock()
	calls := mock.calls.AddCatalogShare
	mock.lockAddCatalogShare.RUnlock()
	return calls
}

func (mock *shareRepoMock) RemoveCatalogShare(ctx context.Context, catalogID, sharedWithID uuid.UUID) error {
	if mock.RemoveCatalogShareFunc == nil {
		panic("shareRepoMock.RemoveCatalogShareFunc: method is nil but shareRepo.RemoveCatalogShare was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		CatalogID    uuid.UUID
		SharedWithID uuid.UUID
	}{Ctx: ctx, CatalogID: catalogID, SharedWithID: sharedWithID}
	mock.lockRemoveCatalogShare.Lock()
	mock.calls.RemoveCatalogShare = append(mock.calls.RemoveCatalogShare, callInfo)
	mock.lockRemoveCatalogShare.Unlock()
	return mock.RemoveCatalogShareFunc(ctx, catalogID, sharedWithID)
}

func (mock *shareRepoMock) RemoveCatalogShareCalls() []struct {
	Ctx          context.Context
	CatalogID    uuid.UUID
	SharedWithID uuid.UUID
} {
	mock.lockRemoveCatalogShare.RLock()
	calls := mock.calls.RemoveCatalogShare
	mock.lockRemoveCatalogShare.RUnlock()
	return calls
}

func (mock *shareRepoMock) CatalogSharedWith(ctx context.Context, catalogID, userID uuid.UUID) (bool, error) {
	if mock.CatalogSharedWithFunc == nil {
		panic("shareRepoMock.CatalogSharedWithFunc: method is nil but shareRepo.CatalogSharedWith was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CatalogID uuid.UUID
		UserID    uuid.UUID
	}{Ctx: ctx, CatalogID: catalogID, UserID: userID}
	mock.lockCatalogSharedWith.Lock()
	mock.calls.CatalogSharedWith = append(mock.calls.CatalogSharedWith, callInfo)
	mock.lockCatalogSharedWith.Unlock()
	return mock.CatalogSharedWithFunc(ctx, catalogID, userID)
}

func (mock *shareRepoMock) CatalogSharedWithCalls() []struct {
	Ctx       context.Context
	CatalogID uuid.UUID
	UserID    uuid.UUID
} {
	mock.lockCatalogSharedWith.RLock()
	calls := mock.calls.CatalogSharedWith
	mock.lockCatalogSharedWith.RUnlock()
	return calls
}
