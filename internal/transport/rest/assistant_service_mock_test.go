package rest

import (
	"context"
	"github.com/WillSanton/WebSite/internal/domain"
	"github.com/WillSanton/WebSite/internal/service/assistant"
	"sync"
)

var _ assistantService = &assistantServiceMock{}

type assistantServiceMock struct {
	GetFunc    func(ctx context.Context) (*domain.WitchAssistant, error)
	UpdateFunc func(ctx context.Context, input assistant.UpdateInput) (*domain.WitchAssistant, error)

	calls struct {
		Get []struct {
			Ctx context.Context
		}
		Update []struct {
			Ctx   context.Context
			Input assistant.UpdateInput
		}
	}
	lockGet    sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *assistantServiceMock) Get(ctx context.Context) (*domain.WitchAssistant, error) {
	if mock.GetFunc == nil {
		panic("assistantServiceMock.GetFunc: method is nil but assistantService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *assistantServiceMock) GetCalls() []struct {
	Ctx context.Context
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *assistantServiceMock) Update(ctx context.Context, input assistant.UpdateInput) (*domain.WitchAssistant, error) {
	if mock.UpdateFunc == nil {
		panic("assistantServiceMock.UpdateFunc: method is nil but assistantService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input assistant.UpdateInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *assistantServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input assistant.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
