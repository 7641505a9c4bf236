package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"research/internal/evidence/models"
	"research/pkg/platform/sentinel"
)

const (
	idCounterKey     = "evidence:id"
	recordKeyPrefix  = "evidence:"
	sessionKeyPrefix = "evidence:session:"

	// defaultMaxRetries bounds optimistic-lock retries in Update.
	defaultMaxRetries = 10
)

// ErrTooManyConflicts is returned when Update keeps losing WATCH races.
var ErrTooManyConflicts = errors.New("evidence update: too many concurrent modifications")

// RedisStore keeps each evidence record as a JSON document and indexes
// record ids per session in a set.
type RedisStore struct {
	client     *redis.Client
	maxRetries int
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithMaxRetries overrides the optimistic transaction retry bound.
func WithMaxRetries(n int) RedisStoreOption {
	return func(s *RedisStore) {
		if n > 0 {
			s.maxRetries = n
		}
	}
}

// NewRedisStore builds a store on an existing client. The client lifecycle
// is managed by the caller.
func NewRedisStore(client *redis.Client, opts ...RedisStoreOption) *RedisStore {
	s := &RedisStore{client: client, maxRetries: defaultMaxRetries}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func recordKey(id int64) string {
	return recordKeyPrefix + strconv.FormatInt(id, 10)
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

func (s *RedisStore) Create(ctx context.Context, e *models.Evidence) (*models.Evidence, error) {
	if e == nil {
		return nil, fmt.Errorf("create evidence: nil record")
	}
	id, err := s.client.Incr(ctx, idCounterKey).Result()
	if err != nil {
		return nil, fmt.Errorf("allocate evidence id: %w", err)
	}
	stored := e.Clone()
	stored.ID = id

	payload, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("encode evidence: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, recordKey(id), payload, 0)
		pipe.SAdd(ctx, sessionKey(stored.SessionID), id)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("save evidence %d: %w", id, err)
	}
	return stored, nil
}

func (s *RedisStore) FindByID(ctx context.Context, id int64) (*models.Evidence, error) {
	return s.get(ctx, s.client, id)
}

// Update watches the record key so a concurrent writer aborts the
// transaction; the read-modify-write is retried up to maxRetries times.
func (s *RedisStore) Update(ctx context.Context, id int64, fn func(*models.Evidence) error) (*models.Evidence, error) {
	key := recordKey(id)
	var updated *models.Evidence

	txf := func(tx *redis.Tx) error {
		current, err := s.get(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := fn(current); err != nil {
			return err
		}
		current.ID = id
		payload, err := json.Marshal(current)
		if err != nil {
			return fmt.Errorf("encode evidence: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, 0)
			return nil
		})
		if err != nil {
			return err
		}
		updated = current
		return nil
	}

	for range s.maxRetries {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return updated, nil
	}
	return nil, ErrTooManyConflicts
}

func (s *RedisStore) ListBySession(ctx context.Context, sessionID string) ([]*models.Evidence, error) {
	members, err := s.client.SMembers(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("list session %s: %w", sessionID, err)
	}
	result := make([]*models.Evidence, 0, len(members))
	if len(members) == 0 {
		return result, nil
	}

	keys := make([]string, len(members))
	for i, m := range members {
		keys[i] = recordKeyPrefix + m
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// index entry without a document; skip it
			continue
		}
		var e models.Evidence
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			return nil, fmt.Errorf("decode %s: %w", keys[i], err)
		}
		result = append(result, &e)
	}
	return result, nil
}

// stringGetter is satisfied by both *redis.Client and *redis.Tx.
type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (s *RedisStore) get(ctx context.Context, c stringGetter, id int64) (*models.Evidence, error) {
	raw, err := c.Get(ctx, recordKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load evidence %d: %w", id, err)
	}
	var e models.Evidence
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, fmt.Errorf("decode evidence %d: %w", id, err)
	}
	return &e, nil
}
