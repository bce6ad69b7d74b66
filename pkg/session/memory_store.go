package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory. Stored values are copied in
// and out so callers never share a Data map with the store.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	done     chan struct{}
	once     sync.Once
}

// NewMemoryStore creates an in-memory store. A positive cleanupInterval starts
// a goroutine that drops expired sessions; stop it with Close.
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	store := &MemoryStore{
		sessions: make(map[string]*Session),
		done:     make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go store.cleanupLoop(cleanupInterval)
	}
	return store
}

func (m *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	m.mu.RLock()
	session, exists := m.sessions[token]
	m.mu.RUnlock()

	if !exists {
		return nil, ErrSessionNotFound
	}
	if session.IsExpired() {
		m.mu.Lock()
		delete(m.sessions, token)
		m.mu.Unlock()
		return nil, ErrSessionExpired
	}
	return session.clone(), nil
}

func (m *MemoryStore) Save(_ context.Context, session *Session) error {
	if session == nil || session.Token == "" {
		return ErrInvalidSession
	}

	m.mu.Lock()
	m.sessions[session.Token] = session.clone()
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
	return nil
}

// Len returns the number of stored sessions, expired ones included.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// DeleteExpired removes all expired sessions
func (m *MemoryStore) DeleteExpired() {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()
	for token, session := range m.sessions {
		if now.After(session.ExpiresAt) {
			delete(m.sessions, token)
		}
	}
}

// Close stops the cleanup goroutine. It is safe to call more than once.
func (m *MemoryStore) Close() error {
	m.once.Do(func() { close(m.done) })
	return nil
}

func (m *MemoryStore) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.DeleteExpired()
		case <-m.done:
			return
		}
	}
}
