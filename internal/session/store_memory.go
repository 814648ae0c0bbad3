package session

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/report-catalog/models"
)

// MemoryStore keeps sessions in process memory. Expired entries are hidden
// from Get immediately and removed by Sweep.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]models.Session),
		now:      time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, id string) (models.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok || session.IsExpired(s.now()) {
		return models.Session{}, ErrSessionNotFound
	}

	// callers must not share the stored slice
	session.Roles = slices.Clone(session.Roles)
	return session, nil
}

func (s *MemoryStore) Save(_ context.Context, session models.Session) error {
	if session.ID == "" {
		return ErrEmptySessionID
	}
	if session.IsExpired(s.now()) {
		return ErrSessionExpired
	}

	session.Roles = slices.Clone(session.Roles)

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()

	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// Sweep removes every session expired at now and reports how many were
// removed.
func (s *MemoryStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if session.IsExpired(now) {
			delete(s.sessions, id)
			removed++
		}
	}

	return removed
}

// Len returns the number of stored sessions, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
