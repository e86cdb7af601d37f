package payment

import (
	"context"
	"github.com/WillSanton/WebSite/internal/domain"
	"sync"
)

var _ assistantActivator = &assistantActivatorMock{}

type assistantActivatorMock struct {
	ActivateFunc func(ctx context.Context, userID int64) (*domain.WitchAssistant, error)

	calls struct {
		Activate []struct {
			Ctx    context.Context
			UserID int64
		}
	}
	lockActivate sync.RWMutex
}

func (mock *assistantActivatorMock) Activate(ctx context.Context, userID int64) (*domain.WitchAssistant, error) {
	if mock.ActivateFunc == nil {
		panic("assistantActivatorMock.ActivateFunc: method is nil but assistantActivator.Activate was just called")
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

func (mock *assistantActivatorMock) ActivateCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockActivate.RLock()
	calls := mock.calls.Activate
	mock.lockActivate.RUnlock()
	return calls
}
