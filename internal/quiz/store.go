package quiz

import (
	"context"
	"errors"
	"sync"
)

var ErrNotFound = errors.New("quiz not found")

// Store holds drafted quizzes. Quizzes are immutable after creation except
// for whole-document replacement via Put with the same id.
type Store interface {
	Put(ctx context.Context, q Quiz) error
	Get(ctx context.Context, id string) (Quiz, error)
}

type memoryStore struct {
	mu      sync.RWMutex
	quizzes map[string]Quiz
}

func NewInMemoryStore() Store {
	return &memoryStore{quizzes: map[string]Quiz{}}
}

func (m *memoryStore) Put(_ context.Context, q Quiz) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quizzes[q.ID] = q
	return nil
}

func (m *memoryStore) Get(_ context.Context, id string) (Quiz, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q, ok := m.quizzes[id]
	if !ok {
		return Quiz{}, ErrNotFound
	}
	return q, nil
}
