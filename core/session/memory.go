package session

import (
	"context"
	"sync"
	"time"

	"craft-planner/core/pool"

	"github.com/google/uuid"
)

// MemoryStore keeps sessions in a map. It is safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	now      func() time.Time
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

func (m *MemoryStore) Create(_ context.Context) (*Session, error) {
	now := m.now()
	s := Session{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return &s, nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (m *MemoryStore) SavePool(_ context.Context, id string, p pool.Pool) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	s.Pool = p
	s.UpdatedAt = m.now()
	m.sessions[id] = s
	return &s, nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}
