package rest

import (
	"context"
	"github.com/WillSanton/WebSite/internal/domain"
	"sync"
)

var _ paymentService = &paymentServiceMock{}

type paymentServiceMock struct {
	CreateIntentFunc func(ctx context.Context) (*domain.PaymentIntent, error)
	StatusFunc       func(ctx context.Context, intentID string) (domain.PaymentStatus, error)

	calls struct {
		CreateIntent []struct {
			Ctx context.Context
		}
		Status []struct {
			Ctx      context.Context
			IntentID string
		}
	}
	lockCreateIntent sync.RWMutex
	lockStatus       sync.RWMutex
}

func (mock *paymentServiceMock) CreateIntent(ctx context.Context) (*domain.PaymentIntent, error) {
	if mock.CreateIntentFunc == nil {
		panic("paymentServiceMock.CreateIntentFunc: method is nil but paymentService.CreateIntent was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCreateIntent.Lock()
	mock.calls.CreateIntent = append(mock.calls.CreateIntent, callInfo)
	mock.lockCreateIntent.Unlock()
	return mock.CreateIntentFunc(ctx)
}

func (mock *paymentServiceMock) CreateIntentCalls() []struct {
	Ctx context.Context
} {
	mock.lockCreateIntent.RLock()
	calls := mock.calls.CreateIntent
	mock.lockCreateIntent.RUnlock()
	return calls
}

func (mock *paymentServiceMock) Status(ctx context.Context, intentID string) (domain.PaymentStatus, error) {
	if mock.StatusFunc == nil {
		panic("paymentServiceMock.StatusFunc: method is nil but paymentService.Status was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		IntentID string
	}{Ctx: ctx, IntentID: intentID}
	mock.lockStatus.Lock()
	mock.calls.Status = append(mock.calls.Status, callInfo)
	mock.lockStatus.Unlock()
	return mock.StatusFunc(ctx, intentID)
}

func (mock *paymentServiceMock) StatusCalls() []struct {
	Ctx      context.Context
	IntentID string
} {
	mock.lockStatus.RLock()
	calls := mock.calls.Status
	mock.lockStatus.RUnlock()
	return calls
}
