package catalog

import (
	"context"
	"sync"

	"github.com/heartmarshall/cerego-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByEmailsFunc func(ctx context.Context, emails []string) ([]domain.User, error)

	calls struct {
		GetByEmails []struct {
			Ctx    context.Context
			Emails []string
		}
	}
	lockGetByEmails sync.RWMutex
}

func (mock *userRepoMock) GetByEmails(ctx context.Context, emails []string) ([]domain.User, error) {
	if mock.GetByEmailsFunc == nil {
		panic("userRepoMock.GetByEmailsFunc: method is nil but userRepo.GetByEmails was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Emails []string
	}{Ctx: ctx, Emails: emails}
	mock.lockGetByEmails.Lock()
	mock.calls.GetByEmails = append(mock.calls.GetByEmails, callInfo)
	mock.lockGetByEmails.Unlock()
	return mock.GetByEmailsFunc(ctx, emails)
}

func (mock *userRepoMock) GetByEmailsCalls() []struct {
	Ctx    context.Context
	Emails []string
} {
	mock.lockGetByEmails.RLock()
	calls := mock.calls.GetByEmails
	mock.lockGetByEmails.RUnlock()
	return calls
}
