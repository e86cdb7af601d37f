package assistant

import (
	"context"
	"github.com/WillSanton/WebSite/internal/domain"
	"sync"
)

var _ assistantRepo = &assistantRepoMock{}

type assistantRepoMock struct {
	ActivateFunc  func(ctx context.Context, userID int64) (*domain.WitchAssistant, error)
	GetByUserFunc func(ctx context.Context, userID int64) (*domain.WitchAssistant, error)
	UpdateFunc    func(ctx context.Context, userID int64, patch domain.AssistantPatch) (*domain.WitchAssistant, error)

	calls struct {
		Activate []struct {
			Ctx    context.Context
			UserID int64
		}
		GetByUser []struct {
			Ctx    context.Context
			UserID int64
		}
		Update []struct {
			Ctx    context.Context
			UserID int64
			Patch  domain.AssistantPatch
		}
	}
	lockActivate  sync.RWMutex
	lockGetByUser sync.RWMutex
	lockUpdate    sync.RWMutex
}

func (mock *assistantRepoMock) Activate(ctx context.Context, userID int64) (*domain.WitchAssistant, error) {
	if mock.ActivateFunc == nil {
		panic("assistantRepoMock.ActivateFunc: method is nil but assistantRepo.Activate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{Ctx: ctx, UserID: userID}
	mock.lockActivate.Lock()
	mock.calls.Activate = append(mock.calls.Activate, callInfo)
	mock.lockActivate.Unlock()
	return mock.ActivateFunc(ctx, userID)
}

func (mock *assistantRepoMock) ActivateCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockActivate.RLock()
	calls := mock.calls.Activate
	mock.lockActivate.RUnlock()
	return calls
}

func (mock *assistantRepoMock) GetByUser(ctx context.Context, userID int64) (*domain.WitchAssistant, error) {
	if mock.GetByUserFunc == nil {
		panic("assistantRepoMock.GetByUserFunc: method is nil but assistantRepo.GetByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{Ctx: ctx, UserID: userID}
	mock.lockGetByUser.Lock()
	mock.calls.GetByUser = append(mock.calls.GetByUser, callInfo)
	mock.lockGetByUser.Unlock()
	return mock.GetByUserFunc(ctx, userID)
}

func (mock *assistantRepoMock) GetByUserCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockGetByUser.RLock()
	calls := mock.calls.GetByUser
	mock.lockGetByUser.RUnlock()
	return calls
}

func (mock *assistantRepoMock) Update(ctx context.Context, userID int64, patch domain.AssistantPatch) (*domain.WitchAssistant, error) {
	if mock.UpdateFunc == nil {
		panic("assistantRepoMock.UpdateFunc: method is nil but assistantRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
		Patch  domain.AssistantPatch
	}{Ctx: ctx, UserID: userID, Patch: patch}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, patch)
}

func (mock *assistantRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	UserID int64
	Patch  domain.AssistantPatch
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
