//go:build integration

package session_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/marcelsud/bookshelf/internal/session"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testcontainersredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

/*
Execute com: go test -tags=integration ./internal/session/...
Requer Docker rodando localmente.
*/

func TestRedisStore_Integration(t *testing.T) {
	ctx := context.Background()

	container, err := testcontainersredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	defer func() { _ = container.Terminate(ctx) }()

	addr, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	client := goredis.NewClient(&goredis.Options{Addr: strings.TrimPrefix(addr, "redis://")})
	defer client.Close()

	store := session.NewRedisStore(client)

	t.Run("save sets a ttl", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "s1", ana, time.Hour))
		m, err := store.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, ana, m)

		ttl, err := client.TTL(ctx, "session:s1").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, 59*time.Minute)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "s1"))
		_, err := store.Get(ctx, "s1")
		assert.ErrorIs(t, err, session.ErrNoSession)
	})

	t.Run("manager over redis", func(t *testing.T) {
		m := session.NewManager("secret", time.Hour, store)
		token, err := m.Issue(ctx, ana)
		require.NoError(t, err)
		got, err := m.Verify(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, ana, got)
	})
}
