//go:build integration

package store_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"research/internal/evidence/models"
	"research/internal/evidence/store"
	"research/pkg/platform/sentinel"
	"research/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *store.RedisStore
	now   time.Time
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.redis = mgr.GetRedis(s.T())
	s.store = store.NewRedisStore(s.redis.Client, store.WithMaxRetries(50))
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisStoreSuite) TestRoundTrip() {
	ctx := context.Background()
	in := models.NewEvidence("Research shows X", "s1", models.TypePrimary, "journal", s.now)

	created, err := s.store.Create(ctx, in)
	s.Require().NoError(err)
	s.Equal(int64(1), created.ID)

	found, err := s.store.FindByID(ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created.Content, found.Content)
	s.Equal(created.SessionID, found.SessionID)
	s.Equal(created.Type, found.Type)
	s.InDelta(created.ReliabilityScore, found.ReliabilityScore, 1e-9)
	s.True(created.CreatedAt.Equal(found.CreatedAt))
	s.Equal(models.StatusActive, found.Status)
}

func (s *RedisStoreSuite) TestFindMissing() {
	_, err := s.store.FindByID(context.Background(), 404)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *RedisStoreSuite) TestUpdateMissingCreatesNothing() {
	ctx := context.Background()
	_, err := s.store.Update(ctx, 7, func(e *models.Evidence) error {
		e.AddTags([]string{"x"})
		return nil
	})
	s.ErrorIs(err, sentinel.ErrNotFound)

	_, err = s.store.FindByID(ctx, 7)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *RedisStoreSuite) TestListBySession() {
	ctx := context.Background()
	for _, session := range []string{"a", "a", "b"} {
		_, err := s.store.Create(ctx, models.NewEvidence("c", session, models.TypeSecondary, "", s.now))
		s.Require().NoError(err)
	}

	a, err := s.store.ListBySession(ctx, "a")
	s.Require().NoError(err)
	s.Len(a, 2)

	empty, err := s.store.ListBySession(ctx, "missing")
	s.Require().NoError(err)
	s.Empty(empty)
}

func (s *RedisStoreSuite) TestConcurrentUpdatesAreNotLost() {
	ctx := context.Background()
	created, err := s.store.Create(ctx, models.NewEvidence("c", "s1", models.TypePrimary, "", s.now))
	s.Require().NoError(err)

	const writers = 10
	var wg sync.WaitGroup
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.store.Update(ctx, created.ID, func(e *models.Evidence) error {
				e.AddTags([]string{"t"})
				return nil
			})
			s.NoError(err)
		}()
	}
	wg.Wait()

	found, err := s.store.FindByID(ctx, created.ID)
	s.Require().NoError(err)
	s.Len(found.Tags, writers)
}
