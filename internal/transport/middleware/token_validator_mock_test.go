package middleware

import (
	"context"
	"sync"

	"github.com/heartmarshall/cerego-backend/internal/service/auth"
)

var _ tokenValidator = &tokenValidatorMock{}

type tokenValidatorMock struct {
	ResolveTokenFunc func(ctx context.Context, token string) (auth.Identity, error)

	calls struct {
		ResolveToken []struct {
			Ctx   context.Context
			Token string
		}
	}
	lockResolveToken sync.RWMutex
}

func (mock *tokenValidatorMock) ResolveToken(ctx context.Context, token string) (auth.Identity, error) {
	if mock.ResolveTokenFunc == nil {
		panic("tokenValidatorMock.ResolveTokenFunc: method is nil but tokenValidator.ResolveToken was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token}
	mock.lockResolveToken.Lock()
	mock.calls.ResolveToken = append(mock.calls.ResolveToken, callInfo)
	mock.lockResolveToken.Unlock()
	return mock.ResolveTokenFunc(ctx, token)
}

func (mock *tokenValidatorMock) ResolveTokenCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockResolveToken.RLock()
	calls := mock.calls.ResolveToken
	mock.lockResolveToken.RUnlock()
	return calls
}
