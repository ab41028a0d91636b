package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"craft-planner/core/pool"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const keyPrefix = "craft-planner:session:"

// RedisClient is the subset of *redis.Client used by RedisStore.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore keeps each session as a JSON value. Every write refreshes the TTL.
type RedisStore struct {
	client RedisClient
	ttl    time.Duration
	now    func() time.Time
}

// NewRedisStore creates a store on client. A zero ttl keeps sessions forever.
func NewRedisStore(client RedisClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl, now: time.Now}
}

func redisKey(id string) string {
	return keyPrefix + id
}

func (r *RedisStore) put(ctx context.Context, s *Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, redisKey(s.ID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session %s: %w", s.ID, err)
	}
	return nil
}

func (r *RedisStore) Create(ctx context.Context) (*Session, error) {
	now := r.now()
	s := &Session{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}
	if err := r.put(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	raw, err := r.client.Get(ctx, redisKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	return &s, nil
}

func (r *RedisStore) SavePool(ctx context.Context, id string, p pool.Pool) (*Session, error) {
	s, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Pool = p
	s.UpdatedAt = r.now()
	if err := r.put(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	n, err := r.client.Del(ctx, redisKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
