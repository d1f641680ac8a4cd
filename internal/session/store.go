// Package session holds the in-memory session store: opaque session tokens
// mapped to the identity snapshot taken at login.
//
// Sessions are not durable; a restart logs everyone out. Expiry is lazy:
// Get reports an expired entry as ErrSessionExpired and leaves removing it to
// the caller. Entries nobody asks for again are dropped on the next Put, so
// abandoned logins do not pile up without a background sweeper.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/MarkAnthonyM/BlockPlot/internal/metrics"
	"github.com/MarkAnthonyM/BlockPlot/models"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// MemoryStore is a mutex-guarded map of session token to session. It is
// created once at startup and shared by every handler.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session

	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]models.Session),
		now:      time.Now,
	}
}

// Put stores s under token, replacing any previous entry, and evicts
// entries that have already expired.
func (m *MemoryStore) Put(token string, s models.Session) {
	now := m.now().Unix()

	m.mu.Lock()
	defer m.mu.Unlock()

	for t, existing := range m.sessions {
		if existing.IsExpired(now) {
			delete(m.sessions, t)
		}
	}
	m.sessions[token] = s
	metrics.ActiveSessions.Set(float64(len(m.sessions)))
}

// Get returns the session stored under token. An absent token yields
// ErrSessionNotFound; an entry whose expiry has passed yields
// ErrSessionExpired even though it is still stored.
func (m *MemoryStore) Get(token string) (models.Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	if s.IsExpired(m.now().Unix()) {
		return models.Session{}, ErrSessionExpired
	}

	return s, nil
}

// Remove deletes the entry under token. Removing an absent token is a no-op.
func (m *MemoryStore) Remove(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, token)
	metrics.ActiveSessions.Set(float64(len(m.sessions)))
}

// Len returns the number of stored entries, expired ones included.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}
