package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"smartlandlord/internal/mirror"
	"smartlandlord/internal/repository"
)

type memSnapshots struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemSnapshots() *memSnapshots {
	return &memSnapshots{data: make(map[string][]byte)}
}

func (m *memSnapshots) Load(_ context.Context, collection string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.data[collection]
	if !ok {
		return nil, repository.ErrNoSnapshot
	}
	return b, nil
}

func (m *memSnapshots) Save(_ context.Context, collection string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[collection] = data
	return nil
}

type pubEvent struct {
	collection string
	action     mirror.Action
	data       map[string]any
}

// capturePublisher 记录入队事件，供断言镜像推送
type capturePublisher struct {
	mu     sync.Mutex
	events []pubEvent
}

func (c *capturePublisher) Enqueue(collection string, action mirror.Action, data map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, pubEvent{collection: collection, action: action, data: data})
}

func (c *capturePublisher) byCollection(collection string) []pubEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []pubEvent
	for _, e := range c.events {
		if e.collection == collection {
			out = append(out, e)
		}
	}
	return out
}

func newTestStore() *repository.Store {
	return repository.NewStore(newMemSnapshots(), zap.NewNop())
}

func fixedNow(date string) func() time.Time {
	t, err := time.Parse("2006-01-02 15:04", date)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}
