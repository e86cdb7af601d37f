package payment

import (
	"context"
	"github.com/WillSanton/WebSite/internal/domain"
	"sync"
)

var _ gateway = &gatewayMock{}

type gatewayMock struct {
	CreateIntentFunc func(ctx context.Context, userID int64, amount int64, currency string) (*domain.PaymentIntent, error)
	GetIntentFunc    func(ctx context.Context, id string) (*domain.PaymentIntent, error)

	calls struct {
		CreateIntent []struct {
			Ctx      context.Context
			UserID   int64
			Amount   int64
			Currency string
		}
		GetIntent []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockCreateIntent sync.RWMutex
	lockGetIntent    sync.RWMutex
}

func (mock *gatewayMock) CreateIntent(ctx context.Context, userID int64, amount int64, currency string) (*domain.PaymentIntent, error) {
	if mock.CreateIntentFunc == nil {
		panic("gatewayMock.CreateIntentFunc: method is nil but gateway.CreateIntent was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   int64
		Amount   int64
		Currency string
	}{Ctx: ctx, UserID: userID, Amount: amount, Currency: currency}
	mock.lockCreateIntent.Lock()
	mock.calls.CreateIntent = append(mock.calls.CreateIntent, callInfo)
	mock.lockCreateIntent.Unlock()
	return mock.CreateIntentFunc(ctx, userID, amount, currency)
}

func (mock *gatewayMock) CreateIntentCalls() []struct {
	Ctx      context.Context
	UserID   int64
	Amount   int64
	Currency string
} {
	mock.lockCreateIntent.RLock()
	calls := mock.calls.CreateIntent
	mock.lockCreateIntent.RUnlock()
	return calls
}

func (mock *gatewayMock) GetIntent(ctx context.Context, id string) (*domain.PaymentIntent, error) {
	if mock.GetIntentFunc == nil {
		panic("gatewayMock.GetIntentFunc: method is nil but gateway.GetIntent was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGetIntent.Lock()
	mock.calls.GetIntent = append(mock.calls.GetIntent, callInfo)
	mock.lockGetIntent.Unlock()
	return mock.GetIntentFunc(ctx, id)
}

func (mock *gatewayMock) GetIntentCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetIntent.RLock()
	calls := mock.calls.GetIntent
	mock.lockGetIntent.RUnlock()
	return calls
}
