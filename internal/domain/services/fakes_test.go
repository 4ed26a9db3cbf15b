package services_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/lindenb1/impress/internal/domain/entities"
	"github.com/lindenb1/impress/internal/domain/services"
)

type memoryRedis struct {
	mu     sync.Mutex
	values map[string]string
	ttls   map[string]time.Duration
	err    error
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memoryRedis) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	v, ok := m.values[key]
	if !ok {
		return "", services.ErrCacheMiss
	}
	return v, nil
}

func (m *memoryRedis) Set(_ context.Context, key string, value any, d time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	switch v := value.(type) {
	case []byte:
		m.values[key] = string(v)
	case string:
		m.values[key] = v
	default:
		return errors.New("unsupported value")
	}
	m.ttls[key] = d
	return nil
}

func (m *memoryRedis) Del(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.values, k)
	}
	return nil
}

type fakeDocuments struct {
	ids map[string]bool
	err error
}

func (f *fakeDocuments) Exists(_ context.Context, id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.ids[id], nil
}

type listCall struct {
	docID string
	after *entities.Cursor
	limit int
}

type fakeAccesses struct {
	page  entities.AccessPage
	err   error
	calls []listCall
}

func (f *fakeAccesses) ListByDocument(_ context.Context, docID string, after *entities.Cursor, limit int) (entities.AccessPage, error) {
	f.calls = append(f.calls, listCall{docID: docID, after: after, limit: limit})
	return f.page, f.err
}

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error {
	return f.err
}
