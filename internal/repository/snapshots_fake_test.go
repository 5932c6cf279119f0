package repository

import (
	"context"
	"sync"
)

// fakeSnapshots 单元测试用的内存快照后端
type fakeSnapshots struct {
	mu    sync.Mutex
	data  map[string][]byte
	saves int
}

func newFakeSnapshots() *fakeSnapshots {
	return &fakeSnapshots{data: map[string][]byte{}}
}

func (f *fakeSnapshots) Load(_ context.Context, collection string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.data[collection]
	if !ok {
		return nil, ErrNoSnapshot
	}
	return d, nil
}

func (f *fakeSnapshots) Save(_ context.Context, collection string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[collection] = data
	f.saves++
	return nil
}
