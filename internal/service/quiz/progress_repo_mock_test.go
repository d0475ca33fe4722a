package quiz

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/domain"
)

var _ progressRepo = &progressRepoMock{}

type progressRepoMock struct {
	GetOrCreateFunc func(ctx context.Context, userID, flashcardID uuid.UUID) (domain.StudyState, error)

	UpdateReviewFunc func(ctx context.Context, userID, flashcardID uuid.UUID, strength float64, reviewedAt, nextReview time.Time) error

	calls struct {
		GetOrCreate []struct {
			Ctx         context.Context
			UserID      uuid.UUID
			FlashcardID uuid.UUID
		}
		UpdateReview []struct {
			Ctx         context.Context
			UserID      uuid.UUID
			FlashcardID uuid.UUID
			Strength    float64
			ReviewedAt  time.Time
			NextReview  time.Time
		}
	}
	lockGetOrCreate  sync.RWMutex
	lockUpdateReview sync.RWMutex
}

func (mock *progressRepoMock) GetOrCreate(ctx context.Context, userID, flashcardID uuid.UUID) (domain.StudyState, error) {
	if mock.GetOrCreateFunc == nil {
		panic("progressRepoMock.GetOrCreateFunc: method is nil but progressRepo.GetOrCreate was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		UserID      uuid.UUID
		FlashcardID uuid.UUID
	}{Ctx: ctx, UserID: userID, FlashcardID: flashcardID}
	mock.lockGetOrCreate.Lock()
	mock.calls.GetOrCreate = append(mock.calls.GetOrCreate, callInfo)
	mock.lockGetOrCreate.Unlock()
	return mock.GetOrCreateFunc(ctx, userID, flashcardID)
}

func (mock *progressRepoMock) GetOrCreateCalls() []struct {
	Ctx         context.Context
	UserID      uuid.UUID
	FlashcardID uuid.UUID
} {
	mock.lockGetOrCreate.RLock()
	calls := mock.calls.GetOrCreate
	mock.lockGetOrCreate.RUnlock()
	return calls
}

func (mock *progressRepoMock) UpdateReview(ctx context.Context, userID, flashcardID uuid.UUID, strength float64, reviewedAt, nextReview time.Time) error {
	if mock.UpdateReviewFunc == nil {
		panic("progressRepoMock.UpdateReviewFunc: method is nil but progressRepo.UpdateReview was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		UserID      uuid.UUID
		FlashcardID uuid.UUID
		Strength    float64
		ReviewedAt  time.Time
		NextReview  time.Time
	}{Ctx: ctx, UserID: userID, FlashcardID: flashcardID, Strength: strength, ReviewedAt: reviewedAt, NextReview: nextReview}
	mock.lockUpdateReview.Lock()
	mock.calls.UpdateReview = append(mock.calls.UpdateReview, callInfo)
	mock.lockUpdateReview.Unlock()
	return mock.UpdateReviewFunc(ctx, userID, flashcardID, strength, reviewedAt, nextReview)
}

func (mock *progressRepoMock) UpdateReviewCalls() []struct {
	Ctx         context.Context
	UserID      uuid.UUID
	FlashcardID uuid.UUID
	Strength    float64
	ReviewedAt  time.Time
	NextReview  time.Time
} {
	mock.lockUpdateReview.RLock()
	calls := mock.calls.UpdateReview
	mock.lockUpdateReview.RUnlock()
	return calls
}
