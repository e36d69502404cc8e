package formsessionstore

import (
	"context"
	"sync"
	"time"
)

type memoryItem struct {
	sess      Session
	expiresAt time.Time
}

type memoryImpl struct {
	mu    sync.RWMutex
	items map[string]memoryItem
	ttl   time.Duration
	now   func() time.Time
}

// NewMemoryInstance хранилище сессий в памяти процесса, для одного инстанса сервиса
func NewMemoryInstance(ttl time.Duration) Provider {
	return &memoryImpl{
		items: map[string]memoryItem{},
		ttl:   ttl,
		now:   time.Now,
	}
}

func (m *memoryImpl) Get(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	item, ok := m.items[id]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if m.expired(item) {
		m.mu.Lock()
		delete(m.items, id)
		m.mu.Unlock()
		return nil, nil
	}
	sess := item.sess.Clone()
	return &sess, nil
}

func (m *memoryImpl) Save(_ context.Context, sess Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evictExpired()
	m.items[sess.ID] = memoryItem{
		sess:      sess.Clone(),
		expiresAt: m.now().Add(m.ttl),
	}
	return nil
}

func (m *memoryImpl) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.items, id)
	m.mu.Unlock()
	return nil
}

func (m *memoryImpl) expired(item memoryItem) bool {
	return m.ttl > 0 && m.now().After(item.expiresAt)
}

func (m *memoryImpl) DeleteExpired(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.evictExpired(), nil
}

// evictExpired вызывается под блокировкой записи
func (m *memoryImpl) evictExpired() int {
	count := 0
	for id, item := range m.items {
		if m.expired(item) {
			delete(m.items, id)
			count++
		}
	}
	return count
}
