package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryEntry struct {
	state   State
	expires time.Time
}

// MemoryStore keeps sessions in process memory. Every access slides the expiry.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]memoryEntry
	now      func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{ttl: ttl, sessions: make(map[string]memoryEntry), now: time.Now}
}

func (m *MemoryStore) Create(_ context.Context) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	m.evictLocked(now)
	st := NewState(uuid.NewString(), now)
	m.sessions[st.ID] = memoryEntry{state: st, expires: now.Add(m.ttl)}
	return st, nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	m.evictLocked(now)
	e, ok := m.sessions[id]
	if !ok {
		return State{}, ErrNotFound
	}
	e.expires = now.Add(m.ttl)
	m.sessions[id] = e
	return e.state, nil
}

func (m *MemoryStore) Update(_ context.Context, id string, p Patch) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	m.evictLocked(now)
	e, ok := m.sessions[id]
	if !ok {
		return State{}, ErrNotFound
	}
	if err := e.state.Apply(p, now); err != nil {
		return State{}, err
	}
	e.expires = now.Add(m.ttl)
	m.sessions[id] = e
	return e.state, nil
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

func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *MemoryStore) evictLocked(now time.Time) {
	for id, e := range m.sessions {
		if !now.Before(e.expires) {
			delete(m.sessions, id)
		}
	}
}
