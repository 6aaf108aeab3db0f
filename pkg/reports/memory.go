package reports

import (
	"context"
	"sync"

	"github.com/dmitrymomot/liekit/pkg/lies"
)

// MemoryStore keeps verdicts in process. It backs the CLI and tests when no
// database is configured.
type MemoryStore struct {
	mu     sync.RWMutex
	byID   map[string]lies.Verdict
	byHash map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:   make(map[string]lies.Verdict),
		byHash: make(map[string]string),
	}
}

func (s *MemoryStore) Save(_ context.Context, v lies.Verdict) error {
	if err := validate(v); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[v.ID]; ok {
		return nil
	}
	s.byID[v.ID] = v
	if cur, ok := s.byID[s.byHash[v.Hash]]; !ok || !v.CreatedAt.Before(cur.CreatedAt) {
		s.byHash[v.Hash] = v.ID
	}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (lies.Verdict, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.byID[id]
	if !ok {
		return lies.Verdict{}, ErrNotFound
	}
	return v, nil
}

func (s *MemoryStore) LatestByHash(_ context.Context, hash string) (lies.Verdict, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.byID[s.byHash[hash]]
	if !ok {
		return lies.Verdict{}, ErrNotFound
	}
	return v, nil
}

// Len returns the number of stored verdicts.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
