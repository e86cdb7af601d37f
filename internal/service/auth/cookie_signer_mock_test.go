package auth

import (
	"github.com/google/uuid"
	"sync"
	"time"
)

var _ cookieSigner = &cookieSignerMock{}

type cookieSignerMock struct {
	SignFunc   func(sessionID uuid.UUID, userID int64, expiresAt time.Time) (string, error)
	VerifyFunc func(value string) (uuid.UUID, int64, error)

	calls struct {
		Sign []struct {
			SessionID uuid.UUID
			UserID    int64
			ExpiresAt time.Time
		}
		Verify []struct {
			Value string
		}
	}
	lockSign   sync.RWMutex
	lockVerify sync.RWMutex
}

func (mock *cookieSignerMock) Sign(sessionID uuid.UUID, userID int64, expiresAt time.Time) (string, error) {
	if mock.SignFunc == nil {
		panic("cookieSignerMock.SignFunc: method is nil but cookieSigner.Sign was just called")
	}
	callInfo := struct {
		SessionID uuid.UUID
		UserID    int64
		ExpiresAt time.Time
	}{SessionID: sessionID, UserID: userID, ExpiresAt: expiresAt}
	mock.lockSign.Lock()
	mock.calls.Sign = append(mock.calls.Sign, callInfo)
	mock.lockSign.Unlock()
	return mock.SignFunc(sessionID, userID, expiresAt)
}

func (mock *cookieSignerMock) SignCalls() []struct {
	SessionID uuid.UUID
	UserID    int64
	ExpiresAt time.Time
} {
	mock.lockSign.RLock()
	calls := mock.calls.Sign
	mock.lockSign.RUnlock()
	return calls
}

func (mock *cookieSignerMock) Verify(value string) (uuid.UUID, int64, error) {
	if mock.VerifyFunc == nil {
		panic("cookieSignerMock.VerifyFunc: method is nil but cookieSigner.Verify was just called")
	}
	callInfo := struct {
		Value string
	}{Value: value}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(value)
}

func (mock *cookieSignerMock) VerifyCalls() []struct {
	Value string
} {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}
