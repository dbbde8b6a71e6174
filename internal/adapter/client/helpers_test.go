package client

import (
	"context"
	"sync"

	"jeju-tour-api/internal/domain/entity"
)

type memoryStore struct {
	mu      sync.Mutex
	turns   map[string][]entity.Turn
	saveErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{turns: make(map[string][]entity.Turn)}
}

func (m *memoryStore) Load(_ context.Context, id string) ([]entity.Turn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.turns[id]
	if !ok {
		return nil, entity.ErrConversationNotFound
	}
	return append([]entity.Turn(nil), t...), nil
}

func (m *memoryStore) Save(_ context.Context, id string, turns []entity.Turn) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.turns[id] = append([]entity.Turn(nil), turns...)
	return nil
}
