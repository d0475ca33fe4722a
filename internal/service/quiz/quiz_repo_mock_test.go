package quiz

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/domain"
)

var _ quizRepo = &quizRepoMock{}

type quizRepoMock struct {
	ListTypesFunc func(ctx context.Context) ([]domain.QuizType, error)

	GetByIDFunc func(ctx context.Context, id uuid.UUID) (domain.Quiz, error)

	ListByUserFunc func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Quiz, error)

	RecordScoreFunc func(ctx context.Context, userID, quizID uuid.UUID, score float64) error

	calls struct {
		ListTypes []struct {
			Ctx context.Context
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
		RecordScore []struct {
			Ctx    context.Context
			UserID uuid.UUID
			QuizID uuid.UUID
			Score  float64
		}
	}
	lockListTypes   sync.RWMutex
	lockGetByID     sync.RWMutex
	lockListByUser  sync.RWMutex
	lockRecordScore sync.RWMutex
}

func (mock *quizRepoMock) ListTypes(ctx context.Context) ([]domain.QuizType, error) {
	if mock.ListTypesFunc == nil {
		panic("quizRepoMock.ListTypesFunc: method is nil but quizRepo.ListTypes was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListTypes.Lock()
	mock.calls.ListTypes = append(mock.calls.ListTypes, callInfo)
	mock.lockListTypes.Unlock()
	return mock.ListTypesFunc(ctx)
}

func (mock *quizRepoMock) ListTypesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListTypes.RLock()
	calls := mock.calls.ListTypes
	mock.lockListTypes.RUnlock()
	return calls
}

func (mock *quizRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Quiz, error) {
	if mock.GetByIDFunc == nil {
		panic("quizRepoMock.GetByIDFunc: method is nil but quizRepo.GetByID was just called")
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

func (mock *quizRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *quizRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Quiz, error) {
	if mock.ListByUserFunc == nil {
		panic("quizRepoMock.ListByUserFunc: method is nil but quizRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}{Ctx: ctx, UserID: userID, Limit: limit}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, limit)
}

func (mock *quizRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *quizRepoMock) RecordScore(ctx context.Context, userID, quizID uuid.UUID, score float64) error {
	if mock.RecordScoreFunc == nil {
		panic("quizRepoMock.RecordScoreFunc: method is nil but quizRepo.RecordScore was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		QuizID uuid.UUID
		Score  float64
	}{Ctx: ctx, UserID: userID, QuizID: quizID, Score: score}
	mock.lockRecordScore.Lock()
	mock.calls.RecordScore = append(mock.calls.RecordScore, callInfo)
	mock.lockRecordScore.Unlock()
	return mock.RecordScoreFunc(ctx, userID, quizID, score)
}

func (mock *quizRepoMock) RecordScoreCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	QuizID uuid.UUID
	Score  float64
} {
	mock.lockRecordScore.RLock()
	calls := mock.calls.RecordScore
	mock.lockRecordScore.RUnlock()
	return calls
}
