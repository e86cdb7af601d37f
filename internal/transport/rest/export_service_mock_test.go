package rest

import (
	"context"
	"github.com/WillSanton/WebSite/internal/service/export"
	"sync"
)

var _ exportService = &exportServiceMock{}

type exportServiceMock struct {
	ExportPostsFunc   func(ctx context.Context) (*export.Archive, error)
	ExportProjectFunc func(ctx context.Context) (*export.Archive, error)

	calls struct {
		ExportPosts []struct {
			Ctx context.Context
		}
		ExportProject []struct {
			Ctx context.Context
		}
	}
	lockExportPosts   sync.RWMutex
	lockExportProject sync.RWMutex
}

func (mock *exportServiceMock) ExportPosts(ctx context.Context) (*export.Archive, error) {
	if mock.ExportPostsFunc == nil {
		panic("exportServiceMock.ExportPostsFunc: method is nil but exportService.ExportPosts was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockExportPosts.Lock()
	mock.calls.ExportPosts = append(mock.calls.ExportPosts, callInfo)
	mock.lockExportPosts.Unlock()
	return mock.ExportPostsFunc(ctx)
}

func (mock *exportServiceMock) ExportPostsCalls() []struct {
	Ctx context.Context
} {
	mock.lockExportPosts.RLock()
	calls := mock.calls.ExportPosts
	mock.lockExportPosts.RUnlock()
	return calls
}

func (mock *exportServiceMock) ExportProject(ctx context.Context) (*export.Archive, error) {
	if mock.ExportProjectFunc == nil {
		panic("exportServiceMock.ExportProjectFunc: method is nil but exportService.ExportProject was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockExportProject.Lock()
	mock.calls.ExportProject = append(mock.calls.ExportProject, callInfo)
	mock.lockExportProject.Unlock()
	return mock.ExportProjectFunc(ctx)
}

func (mock *exportServiceMock) ExportProjectCalls() []struct {
	Ctx context.Context
} {
	mock.lockExportProject.RLock()
	calls := mock.calls.ExportProject
	mock.lockExportProject.RUnlock()
	return calls
}
