package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/marcelsud/bookshelf/book"
	"github.com/redis/go-redis/v9"
)

/* Redis implementation of book.Slot
 * Each catalog is a plain string key holding the serialized list
 */

type Slot struct {
	client *redis.Client
}

// NewSlot creates a new Redis slot and checks the connection
func NewSlot(addr, password string, db int) (*Slot, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to Redis: %w", err)
	}

	return NewSlotWithClient(client), nil
}

// NewSlotWithClient wraps an existing client, sharing its pool
func NewSlotWithClient(client *redis.Client) *Slot {
	return &Slot{client: client}
}

// Read returns the serialized list stored under key
func (s *Slot) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, book.ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("reading slot: %w", err)
	}
	return data, nil
}

// Write overwrites the list stored under key
func (s *Slot) Write(ctx context.Context, key string, payload []byte) error {
	if err := s.client.Set(ctx, key, payload, 0).Err(); err != nil {
		return fmt.Errorf("writing slot: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (s *Slot) Close(ctx context.Context) error {
	return s.client.Close()
}

// GetClient returns the underlying Redis client, used to share the pool with the session store
func (s *Slot) GetClient() *redis.Client {
	return s.client
}
