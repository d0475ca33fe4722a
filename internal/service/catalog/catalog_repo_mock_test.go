package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/domain"
)

var _ catalogRepo = &catalogRepoMock{}

type catalogRepoMock struct {
	CreateFunc func(ctx context.Context, c domain.Catalog) (domain.Catalog, error)

	GetByIDFunc func(ctx context.Context, id uuid.UUID) (domain.Catalog, error)

	LinkFlashcardFunc func(ctx context.Context, catalogID, flashcardID uuid.UUID) error

	SetVisibilityFunc func(ctx context.Context, ownerID, catalogID uuid.UUID, v domain.Visibility) error

	DeleteFunc func(ctx context.Context, ownerID, catalogID uuid.UUID) error

	ExclusiveFlashcardIDsFunc func(ctx context.Context, catalogID, ownerID uuid.UUID) ([]uuid.UUID, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   domain.Catalog
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		LinkFlashcard []struct {
			Ctx         context.Context
			CatalogID   uuid.UUID
			FlashcardID uuid.UUID
		}
		SetVisibility []struct {
			Ctx       context.Context
			OwnerID   uuid.UUID
			CatalogID uuid.UUID
			V         domain.Visibility
		}
		Delete []struct {
			Ctx       context.Context
			OwnerID   uuid.UUID
			CatalogID uuid.UUID
		}
		ExclusiveFlashcardIDs []struct {
			Ctx       context.Context
			CatalogID uuid.UUID
			OwnerID   uuid.UUID
		}
	}
	lockCreate                sync.RWMutex
	lockGetByID               sync.RWMutex
	lockLinkFlashcard         sync.RWMutex
	lockSetVisibility         sync.RWMutex
	lockDelete                sync.RWMutex
	lockExclusiveFlashcardIDs sync.RWMutex
}

func (mock *catalogRepoMock) Create(ctx context.Context, c domain.Catalog) (domain.Catalog, error) {
	if mock.CreateFunc == nil {
		panic("catalogRepoMock.CreateFunc: method is nil but catalogRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Catalog
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *catalogRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   domain.Catalog
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *catalogRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Catalog, error) {
	if mock.GetByIDFunc == nil {
		panic("catalogRepoMock.GetByIDFunc: method is nil but catalogRepo.GetByID was just called")
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

func (mock *catalogRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *catalogRepoMock) LinkFlashcard(ctx context.Context, catalogID, flashcardID uuid.UUID) error {
	if mock.LinkFlashcardFunc == nil {
		panic("catalogRepoMock.LinkFlashcardFunc: method is nil but catalogRepo.LinkFlashcard was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		CatalogID   uuid.UUID
		FlashcardID uuid.UUID
	}{Ctx: ctx, CatalogID: catalogID, FlashcardID: flashcardID}
	mock.lockLinkFlashcard.Lock()
	mock.calls.LinkFlashcard = append(mock.calls.LinkFlashcard, callInfo)
	mock.lockLinkFlashcard.Unlock()
	return mock.LinkFlashcardFunc(ctx, catalogID, flashcardID)
}

func (mock *catalogRepoMock) LinkFlashcardCalls() []struct {
	Ctx         context.Context
	CatalogID   uuid.UUID
	FlashcardID uuid.UUID
} {
	mock.lockLinkFlashcard.RLock()
	calls := mock.calls.LinkFlashcard
	mock.lockLinkFlashcard.RUnlock()
	return calls
}

func (mock *catalogRepoMock) SetVisibility(ctx context.Context, ownerID, catalogID uuid.UUID, v domain.Visibility) error {
	if mock.SetVisibilityFunc == nil {
		panic("catalogRepoMock.SetVisibilityFunc: method is nil but catalogRepo.SetVisibility was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		OwnerID   uuid.UUID
		CatalogID uuid.UUID
		V         domain.Visibility
	}{Ctx: ctx, OwnerID: ownerID, CatalogID: catalogID, V: v}
	mock.lockSetVisibility.Lock()
	mock.calls.SetVisibility = append(mock.calls.SetVisibility, callInfo)
	mock.lockSetVisibility.Unlock()
	return mock.SetVisibilityFunc(ctx, ownerID, catalogID, v)
}

func (mock *catalogRepoMock) SetVisibilityCalls() []struct {
	Ctx       context.Context
	OwnerID   uuid.UUID
	CatalogID uuid.UUID
	V         domain.Visibility
} {
	mock.lockSetVisibility.RLock()
	calls := mock.calls.SetVisibility
	mock.lockSetVisibility.RUnlock()
	return calls
}

func (mock *catalogRepoMock) Delete(ctx context.Context, ownerID, catalogID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("catalogRepoMock.DeleteFunc: method is nil but catalogRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		OwnerID   uuid.UUID
		CatalogID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, CatalogID: catalogID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, ownerID, catalogID)
}

func (mock *catalogRepoMock) DeleteCalls() []struct {
	Ctx       context.Context
	OwnerID   uuid.UUID
	CatalogID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *catalogRepoMock) ExclusiveFlashcardIDs(ctx context.Context, catalogID, ownerID uuid.UUID) ([]uuid.UUID, error) {
	if mock.ExclusiveFlashcardIDsFunc == nil {
		panic("catalogRepoMock.ExclusiveFlashcardIDsFunc: method is nil but catalogRepo.ExclusiveFlashcardIDs was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CatalogID uuid.UUID
		OwnerID   uuid.UUID
	}{Ctx: ctx, CatalogID: catalogID, OwnerID: ownerID}
	mock.lockExclusiveFlashcardIDs.Lock()
	mock.calls.ExclusiveFlashcardIDs = append(mock.calls.ExclusiveFlashcardIDs, callInfo)
	mock.lockExclusiveFlashcardIDs.Unlock()
	return mock.ExclusiveFlashcardIDsFunc(ctx, catalogID, ownerID)
}

func (mock *catalogRepoMock) ExclusiveFlashcardIDsCalls() []struct {
	Ctx       context.Context
	CatalogID uuid.UUID
	OwnerID   uuid.UUID
} {
	mock.lockExclusiveFlashcardIDs.RLock()
	calls := mock.calls.ExclusiveFlashcardIDs
	mock.lockExclusiveFlashcardIDs.RUnlock()
	return calls
}
