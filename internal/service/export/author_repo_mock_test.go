package export

import (
	"context"
	"github.com/WillSanton/WebSite/internal/domain"
	"sync"
)

var _ authorRepo = &authorRepoMock{}

type authorRepoMock struct {
	GetByIDsFunc func(ctx context.Context, ids []int64) ([]domain.User, error)

	calls struct {
		GetByIDs []struct {
			Ctx context.Context
			Ids []int64
		}
	}
	lockGetByIDs sync.RWMutex
}

func (mock *authorRepoMock) GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	if mock.GetByIDsFunc == nil {
		panic("authorRepoMock.GetByIDsFunc: method is nil but authorRepo.GetByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []int64
	}{Ctx: ctx, Ids: ids}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *authorRepoMock) GetByIDsCalls() []struct {
	Ctx context.Context
	Ids []int64
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}
