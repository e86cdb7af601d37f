package auth

import (
	"context"
	"github.com/WillSanton/WebSite/internal/domain"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc         func(ctx context.Context, username string, passwordHash string) (*domain.User, error)
	GetByIDFunc        func(ctx context.Context, id int64) (*domain.User, error)
	GetByUsernameFunc  func(ctx context.Context, username string) (*domain.User, error)
	UpdatePasswordFunc func(ctx context.Context, id int64, passwordHash string) error

	calls struct {
		Create []struct {
			Ctx          context.Context
			Username     string
			PasswordHash string
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		GetByUsername []struct {
			Ctx      context.Context
			Username string
		}
		UpdatePassword []struct {
			Ctx          context.Context
			ID           int64
			PasswordHash string
		}
	}
	lockCreate         sync.RWMutex
	lockGetByID        sync.RWMutex
	lockGetByUsername  sync.RWMutex
	lockUpdatePassword sync.RWMutex
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

func (mock *userRepoMock) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
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

func (mock *userRepoMock) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	if mock.UpdatePasswordFunc == nil {
		panic("userRepoMock.UpdatePasswordFunc: method is nil but userRepo.UpdatePassword was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		ID           int64
		PasswordHash string
	}{Ctx: ctx, ID: id, PasswordHash: passwordHash}
	mock.lockUpdatePassword.Lock()
	mock.calls.UpdatePassword = append(mock.calls.UpdatePassword, callInfo)
	mock.lockUpdatePassword.Unlock()
	return mock.UpdatePasswordFunc(ctx, id, passwordHash)
}

func (mock *userRepoMock) UpdatePasswordCalls() []struct {
	Ctx          context.Context
	ID           int64
	PasswordHash string
} {
	mock.lockUpdatePassword.RLock()
	calls := mock.calls.UpdatePassword
	mock.lockUpdatePassword.RUnlock()
	return calls
}
