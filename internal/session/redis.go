package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

/* Markers are stored as JSON under session:{id} with the session TTL */

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func key(id string) string {
	return "session:" + id
}

func (s *RedisStore) Save(ctx context.Context, id string, m Marker, ttl time.Duration) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	if err := s.client.Set(ctx, key(id), data, ttl).Err(); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (Marker, error) {
	data, err := s.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Marker{}, ErrNoSession
	}
	if err != nil {
		return Marker{}, fmt.Errorf("getting session: %w", err)
	}
	var m Marker
	if err := json.Unmarshal(data, &m); err != nil {
		return Marker{}, fmt.Errorf("unmarshaling session: %w", err)
	}
	return m, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}
