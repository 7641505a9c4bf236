package memory

import (
	"context"
	"sync"

	audit "research/pkg/platform/audit"
)

// InMemoryStore keeps events in append order. Used by default and in tests.
type InMemoryStore struct {
	mu     sync.RWMutex
	events []audit.Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
}

func (s *InMemoryStore) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *InMemoryStore) ListByEvidence(_ context.Context, evidenceID int64) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := []audit.Event{}
	for _, e := range s.events {
		if e.EvidenceID == evidenceID {
			result = append(result, e)
		}
	}
	return result, nil
}

// ListAll returns every event in append order.
func (s *InMemoryStore) ListAll(_ context.Context) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]audit.Event{}, s.events...), nil
}
