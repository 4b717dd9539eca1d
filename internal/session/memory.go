package session

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	marker  Marker
	expires time.Time
}

// MemoryStore keeps markers in process, for single instance deployments and tests
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Save(_ context.Context, id string, m Marker, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = entry{marker: m, expires: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (Marker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return Marker{}, ErrNoSession
	}
	if !s.now().Before(e.expires) {
		delete(s.entries, id)
		return Marker{}, ErrNoSession
	}
	return e.marker, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}
