//go:build integration

package redis_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/marcelsud/bookshelf/book/redis"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	testcontainersredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

/* Test helpers for Redis integration tests
 * Following the pattern from: https://eltonminetto.dev/post/2024-02-15-using-test-helpers/
 */

type RedisContainer struct {
	Container *testcontainersredis.RedisContainer
	Addr      string
}

// SetupRedisContainer starts a Redis testcontainer
func SetupRedisContainer(t *testing.T, ctx context.Context) (*RedisContainer, func()) {
	t.Helper()

	redisContainer, err := testcontainersredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err, "failed to start Redis container")

	addr, err := redisContainer.ConnectionString(ctx)
	require.NoError(t, err, "failed to get Redis connection string")
	addr = strings.TrimPrefix(addr, "redis://")

	time.Sleep(1 * time.Second)

	cleanup := func() {
		if err := redisContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate Redis container: %v", err)
		}
	}
	return &RedisContainer{Container: redisContainer, Addr: addr}, cleanup
}

func CreateTestSlot(t *testing.T, addr string) *redis.Slot {
	t.Helper()
	slot, err := redis.NewSlot(addr, "", 0)
	require.NoError(t, err, "failed to create Redis slot")
	return slot
}

// GetKeyTTL returns the TTL of a key; -1 means no expiry
func GetKeyTTL(t *testing.T, addr, key string) time.Duration {
	t.Helper()
	client := goredis.NewClient(&goredis.Options{Addr: addr})
	defer client.Close()
	ttl, err := client.TTL(context.Background(), key).Result()
	require.NoError(t, err)
	return ttl
}
