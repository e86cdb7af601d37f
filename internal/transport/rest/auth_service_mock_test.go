package rest

import (
	"context"
	"github.com/WillSanton/WebSite/internal/domain"
	"github.com/WillSanton/WebSite/internal/service/auth"
	"sync"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	ChangePasswordFunc func(ctx context.Context, input auth.ChangePasswordInput) error
	CurrentUserFunc    func(ctx context.Context) (*domain.User, error)
	LoginFunc          func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	LogoutFunc         func(ctx context.Context) error
	RegisterFunc       func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)

	calls struct {
		ChangePassword []struct {
			Ctx   context.Context
			Input auth.ChangePasswordInput
		}
		CurrentUser []struct {
			Ctx context.Context
		}
		Login []struct {
			Ctx   context.Context
			Input auth.LoginInput
		}
		Logout []struct {
			Ctx context.Context
		}
		Register []struct {
			Ctx   context.Context
			Input auth.RegisterInput
		}
	}
	lockChangePassword sync.RWMutex
	lockCurrentUser    sync.RWMutex
	lockLogin          sync.RWMutex
	lockLogout         sync.RWMutex
	lockRegister       sync.RWMutex
}

func (mock *authServiceMock) ChangePassword(ctx context.Context, input auth.ChangePasswordInput) error {
	if mock.ChangePasswordFunc == nil {
		panic("authServiceMock.ChangePasswordFunc: method is nil but authService.ChangePassword was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.ChangePasswordInput
	}{Ctx: ctx, Input: input}
	mock.lockChangePassword.Lock()
	mock.calls.ChangePassword = append(mock.calls.ChangePassword, callInfo)
	mock.lockChangePassword.Unlock()
	return mock.ChangePasswordFunc(ctx, input)
}

func (mock *authServiceMock) ChangePasswordCalls() []struct {
	Ctx   context.Context
	Input auth.ChangePasswordInput
} {
	mock.lockChangePassword.RLock()
	calls := mock.calls.ChangePassword
	mock.lockChangePassword.RUnlock()
	return calls
}

func (mock *authServiceMock) CurrentUser(ctx context.Context) (*domain.User, error) {
	if mock.CurrentUserFunc == nil {
		panic("authServiceMock.CurrentUserFunc: method is nil but authService.CurrentUser was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCurrentUser.Lock()
	mock.calls.CurrentUser = append(mock.calls.CurrentUser, callInfo)
	mock.lockCurrentUser.Unlock()
	return mock.CurrentUserFunc(ctx)
}

func (mock *authServiceMock) CurrentUserCalls() []struct {
	Ctx context.Context
} {
	mock.lockCurrentUser.RLock()
	calls := mock.calls.CurrentUser
	mock.lockCurrentUser.RUnlock()
	return calls
}

func (mock *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.LoginInput
	}{Ctx: ctx, Input: input}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *authServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input auth.LoginInput
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *authServiceMock) Logout(ctx context.Context) error {
	if mock.LogoutFunc == nil {
		panic("authServiceMock.LogoutFunc: method is nil but authService.Logout was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockLogout.Lock()
	mock.calls.Logout = append(mock.calls.Logout, callInfo)
	mock.lockLogout.Unlock()
	return mock.LogoutFunc(ctx)
}

func (mock *authServiceMock) LogoutCalls() []struct {
	Ctx context.Context
} {
	mock.lockLogout.RLock()
	calls := mock.calls.Logout
	mock.lockLogout.RUnlock()
	return calls
}

func (mock *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	if mock.RegisterFunc == nil {
		panic("authServiceMock.RegisterFunc: method is nil but authService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.RegisterInput
	}{Ctx: ctx, Input: input}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *authServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input auth.RegisterInput
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}
