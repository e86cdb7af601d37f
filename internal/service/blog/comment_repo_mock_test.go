package blog

import (
	"context"
	"github.com/WillSanton/WebSite/internal/domain"
	"sync"
)

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	CreateFunc     func(ctx context.Context, c domain.Comment) (*domain.Comment, error)
	ListByPostFunc func(ctx context.Context, postID int64) ([]domain.Comment, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   domain.Comment
		}
		ListByPost []struct {
			Ctx    context.Context
			PostID int64
		}
	}
	lockCreate     sync.RWMutex
	lockListByPost sync.RWMutex
}

func (mock *commentRepoMock) Create(ctx context.Context, c domain.Comment) (*domain.Comment, error) {
	if mock.CreateFunc == nil {
		panic("commentRepoMock.CreateFunc: method is nil but commentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Comment
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *commentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   domain.Comment
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *commentRepoMock) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	if mock.ListByPostFunc == nil {
		panic("commentRepoMock.ListByPostFunc: method is nil but commentRepo.ListByPost was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		PostID int64
	}{Ctx: ctx, PostID: postID}
	mock.lockListByPost.Lock()
	mock.calls.ListByPost = append(mock.calls.ListByPost, callInfo)
	mock.lockListByPost.Unlock()
	return mock.ListByPostFunc(ctx, postID)
}

func (mock *commentRepoMock) ListByPostCalls() []struct {
	Ctx    context.Context
	PostID int64
} {
	mock.lockListByPost.RLock()
	calls := mock.calls.ListByPost
	mock.lockListByPost.RUnlock()
	return calls
}
