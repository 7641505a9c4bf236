package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"research/internal/evidence/models"
	"research/pkg/platform/sentinel"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
	ctx   context.Context
	now   time.Time
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemoryStore()
	s.ctx = context.Background()
	s.now = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
}

func (s *InMemoryStoreSuite) newEvidence(sessionID string) *models.Evidence {
	return models.NewEvidence("content", sessionID, models.TypePrimary, "journal", s.now)
}

func (s *InMemoryStoreSuite) TestCreateAssignsIncreasingIDs() {
	var last int64
	for range 3 {
		e, err := s.store.Create(s.ctx, s.newEvidence("s1"))
		s.Require().NoError(err)
		s.Greater(e.ID, last)
		last = e.ID
	}
}

func (s *InMemoryStoreSuite) TestCreateIgnoresCallerID() {
	in := s.newEvidence("s1")
	in.ID = 42

	e, err := s.store.Create(s.ctx, in)
	s.Require().NoError(err)
	s.Equal(int64(1), e.ID)
	s.Equal(int64(42), in.ID, "input must not be mutated")
}

func (s *InMemoryStoreSuite) TestFindByID() {
	created, err := s.store.Create(s.ctx, s.newEvidence("s1"))
	s.Require().NoError(err)

	s.Run("returns a copy", func() {
		found, err := s.store.FindByID(s.ctx, created.ID)
		s.Require().NoError(err)
		found.Tags = append(found.Tags, "leak")

		again, err := s.store.FindByID(s.ctx, created.ID)
		s.Require().NoError(err)
		s.Empty(again.Tags)
	})

	s.Run("missing id", func() {
		_, err := s.store.FindByID(s.ctx, 999)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *InMemoryStoreSuite) TestUpdate() {
	created, err := s.store.Create(s.ctx, s.newEvidence("s1"))
	s.Require().NoError(err)

	s.Run("applies mutation", func() {
		updated, err := s.store.Update(s.ctx, created.ID, func(e *models.Evidence) error {
			e.AddTags([]string{"a"})
			return nil
		})
		s.Require().NoError(err)
		s.Equal([]string{"a"}, updated.Tags)
	})

	s.Run("discards mutation when fn fails", func() {
		boom := errors.New("boom")
		_, err := s.store.Update(s.ctx, created.ID, func(e *models.Evidence) error {
			e.AddTags([]string{"b"})
			return boom
		})
		s.ErrorIs(err, boom)

		found, err := s.store.FindByID(s.ctx, created.ID)
		s.Require().NoError(err)
		s.Equal([]string{"a"}, found.Tags)
	})

	s.Run("missing id creates nothing", func() {
		called := false
		_, err := s.store.Update(s.ctx, 999, func(*models.Evidence) error {
			called = true
			return nil
		})
		s.ErrorIs(err, sentinel.ErrNotFound)
		s.False(called)

		_, err = s.store.FindByID(s.ctx, 999)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *InMemoryStoreSuite) TestListBySession() {
	for _, session := range []string{"s1", "s1", "s2"} {
		_, err := s.store.Create(s.ctx, s.newEvidence(session))
		s.Require().NoError(err)
	}

	s1, err := s.store.ListBySession(s.ctx, "s1")
	s.Require().NoError(err)
	s.Len(s1, 2)

	none, err := s.store.ListBySession(s.ctx, "unknown")
	s.Require().NoError(err)
	s.NotNil(none)
	s.Empty(none)
}

func (s *InMemoryStoreSuite) TestConcurrentCreateAndTag() {
	const workers = 20
	var wg sync.WaitGroup
	ids := make(chan int64, workers)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e, err := s.store.Create(s.ctx, s.newEvidence("s1"))
			s.NoError(err)
			ids <- e.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		s.False(seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	s.Len(seen, workers)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.store.Update(s.ctx, 1, func(e *models.Evidence) error {
				e.AddTags([]string{"t"})
				return nil
			})
			s.NoError(err)
		}()
	}
	wg.Wait()

	found, err := s.store.FindByID(s.ctx, 1)
	s.Require().NoError(err)
	s.Len(found.Tags, workers)
}
