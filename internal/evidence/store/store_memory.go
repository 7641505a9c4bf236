package store

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"research/internal/evidence/models"
	"research/pkg/platform/sentinel"
)

// InMemoryStore keeps evidence in a map guarded by a RWMutex.
type InMemoryStore struct {
	mu       sync.RWMutex
	evidence map[int64]*models.Evidence
	nextID   atomic.Int64
}

// NewInMemoryStore returns an empty store whose first id is 1.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		evidence: make(map[int64]*models.Evidence),
	}
}

func (s *InMemoryStore) Create(_ context.Context, e *models.Evidence) (*models.Evidence, error) {
	if e == nil {
		return nil, fmt.Errorf("create evidence: nil record")
	}
	stored := e.Clone()
	stored.ID = s.nextID.Add(1)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.evidence[stored.ID] = stored
	return stored.Clone(), nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id int64) (*models.Evidence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.evidence[id]; ok {
		return e.Clone(), nil
	}
	return nil, sentinel.ErrNotFound
}

// Update runs fn on a private copy under the write lock and swaps it in
// only when fn succeeds.
func (s *InMemoryStore) Update(_ context.Context, id int64, fn func(*models.Evidence) error) (*models.Evidence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.evidence[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	next := current.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	next.ID = id
	s.evidence[id] = next
	return next.Clone(), nil
}

func (s *InMemoryStore) ListBySession(_ context.Context, sessionID string) ([]*models.Evidence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*models.Evidence, 0)
	for _, e := range s.evidence {
		if e.SessionID == sessionID {
			result = append(result, e.Clone())
		}
	}
	return result, nil
}
