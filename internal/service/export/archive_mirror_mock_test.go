package export

import (
	"context"
	"io"
	"sync"
)

var _ archiveMirror = &archiveMirrorMock{}

type archiveMirrorMock struct {
	PutFunc func(ctx context.Context, name string, r io.Reader, size int64, contentType string) error

	calls struct {
		Put []struct {
			Ctx         context.Context
			Name        string
			R           io.Reader
			Size        int64
			ContentType string
		}
	}
	lockPut sync.RWMutex
}

func (mock *archiveMirrorMock) Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	if mock.PutFunc == nil {
		panic("archiveMirrorMock.PutFunc: method is nil but archiveMirror.Put was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Name        string
		R           io.Reader
		Size        int64
		ContentType string
	}{Ctx: ctx, Name: name, R: r, Size: size, ContentType: contentType}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, name, r, size, contentType)
}

func (mock *archiveMirrorMock) PutCalls() []struct {
	Ctx         context.Context
	Name        string
	R           io.Reader
	Size        int64
	ContentType string
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}
