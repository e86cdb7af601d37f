package blog

import (
	"context"
	"github.com/WillSanton/WebSite/internal/domain"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc        func(ctx context.Context, username string, passwordHash string) (*domain.User, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)

	calls struct {
		Create []struct {
			Ctx          context.Context
			Username     string
			PasswordHash string
		}
		GetByUsername []struct {
			Ctx      context.Context
			Username string
		}
	}
	lockCreate        sync.RWMutex
	lockGetByUsername sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, username string, passwordHash string) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		Username     string
		PasswordHash string
	}{Ctx: ctx, Username: username, PasswordHash: passwordHash}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, username, passwordHash)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx          context.Context
	Username     string
	PasswordHash string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if mock.GetByUsernameFunc == nil {
		panic("userRepoMock.GetByUsernameFunc: method is nil but userRepo.GetByUsername was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{Ctx: ctx, Username: username}
	mock.lockGetByUsername.Lock()
	mock.calls.GetByUsername = append(mock.calls.GetByUsername, callInfo)
	mock.lockGetByUsername.Unlock()
	return mock.GetByUsernameFunc(ctx, username)
}

func (mock *userRepoMock) GetByUsernameCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockGetByUsername.RLock()
	calls := mock.calls.GetByUsername
	mock.lockGetByUsername.RUnlock()
	return calls
}
