package blog

import (
	"context"
	"github.com/WillSanton/WebSite/internal/domain"
	"sync"
)

var _ postRepo = &postRepoMock{}

type postRepoMock struct {
	CreateFunc    func(ctx context.Context, p domain.Post) (*domain.Post, error)
	GetBySlugFunc func(ctx context.Context, slug string) (*domain.Post, error)
	ListFunc      func(ctx context.Context) ([]domain.Post, error)
	SearchFunc    func(ctx context.Context, filter domain.PostFilter) ([]domain.Post, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			P   domain.Post
		}
		GetBySlug []struct {
			Ctx  context.Context
			Slug string
		}
		List []struct {
			Ctx context.Context
		}
		Search []struct {
			Ctx    context.Context
			Filter domain.PostFilter
		}
	}
	lockCreate    sync.RWMutex
	lockGetBySlug sync.RWMutex
	lockList      sync.RWMutex
	lockSearch    sync.RWMutex
}

func (mock *postRepoMock) Create(ctx context.Context, p domain.Post) (*domain.Post, error) {
	if mock.CreateFunc == nil {
		panic("postRepoMock.CreateFunc: method is nil but postRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Post
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *postRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   domain.Post
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *postRepoMock) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	if mock.GetBySlugFunc == nil {
		panic("postRepoMock.GetBySlugFunc: method is nil but postRepo.GetBySlug was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{Ctx: ctx, Slug: slug}
	mock.lockGetBySlug.Lock()
	mock.calls.GetBySlug = append(mock.calls.GetBySlug, callInfo)
	mock.lockGetBySlug.Unlock()
	return mock.GetBySlugFunc(ctx, slug)
}

func (mock *postRepoMock) GetBySlugCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockGetBySlug.RLock()
	calls := mock.calls.GetBySlug
	mock.lockGetBySlug.RUnlock()
	return calls
}

func (mock *postRepoMock) List(ctx context.Context) ([]domain.Post, error) {
	if mock.ListFunc == nil {
		panic("postRepoMock.ListFunc: method is nil but postRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *postRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *postRepoMock) Search(ctx context.Context, filter domain.PostFilter) ([]domain.Post, error) {
	if mock.SearchFunc == nil {
		panic("postRepoMock.SearchFunc: method is nil but postRepo.Search was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.PostFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, filter)
}

func (mock *postRepoMock) SearchCalls() []struct {
	Ctx    context.Context
	Filter domain.PostFilter
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
