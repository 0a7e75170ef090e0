package session

import (
	"sync"
	"time"
)

// entry pairs a session with its own lock so compound mutations of one user
// never block other users.
type entry struct {
	mu sync.Mutex
	s  *UserSession
}

// MemoryStore is the volatile in-process Store implementation. Sessions
// live for the lifetime of the process.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[int64]*entry
	now   func() time.Time
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[int64]*entry),
		now:   time.Now,
	}
}

func (m *MemoryStore) lookup(userID int64) (*entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.users[userID]
	return e, ok
}

func (m *MemoryStore) getOrCreate(userID int64, displayName string) *entry {
	if e, ok := m.lookup(userID); ok {
		return e
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.users[userID]; ok {
		return e
	}
	e := &entry{s: newSession(displayName, m.now())}
	m.users[userID] = e
	return e
}

// GetOrCreate returns a snapshot of the user's session, creating it with
// defaults on first access.
func (m *MemoryStore) GetOrCreate(userID int64, displayName string) UserSession {
	e := m.getOrCreate(userID, displayName)
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.s.DisplayName == "" && displayName != "" {
		e.s.DisplayName = displayName
	}
	return e.s.clone()
}

// View returns a snapshot without creating anything.
func (m *MemoryStore) View(userID int64) (UserSession, bool) {
	e, ok := m.lookup(userID)
	if !ok {
		return UserSession{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.s.clone(), true
}

// Update runs fn under the per-user lock and returns the resulting snapshot.
func (m *MemoryStore) Update(userID int64, displayName string, fn func(*UserSession)) UserSession {
	e := m.getOrCreate(userID, displayName)
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.s.DisplayName == "" && displayName != "" {
		e.s.DisplayName = displayName
	}
	if fn != nil {
		fn(e.s)
	}
	return e.s.clone()
}
