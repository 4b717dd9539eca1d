package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/marcelsud/bookshelf/internal/session"
	"github.com/marcelsud/bookshelf/internal/session/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var ana = session.Marker{Username: "ana", Email: "ana@example.com"}

func TestManager(t *testing.T) {
	ctx := context.Background()

	t.Run("issue then verify", func(t *testing.T) {
		m := session.NewManager("secret", time.Hour, session.NewMemoryStore())
		token, err := m.Issue(ctx, ana)
		require.NoError(t, err)

		marker, err := m.Verify(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, ana, marker)
	})

	t.Run("revoked token is rejected", func(t *testing.T) {
		m := session.NewManager("secret", time.Hour, session.NewMemoryStore())
		token, err := m.Issue(ctx, ana)
		require.NoError(t, err)

		require.NoError(t, m.Revoke(ctx, token))
		_, err = m.Verify(ctx, token)
		assert.ErrorIs(t, err, session.ErrNoSession)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		store := session.NewMemoryStore()
		other := session.NewManager("other", time.Hour, store)
		token, err := other.Issue(ctx, ana)
		require.NoError(t, err)

		m := session.NewManager("secret", time.Hour, store)
		_, err = m.Verify(ctx, token)
		assert.ErrorIs(t, err, session.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		claims := session.Claims{
			Username: "ana",
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        "abc",
				Subject:   ana.Email,
				Issuer:    "bookshelf",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		store := session.NewMemoryStore()
		require.NoError(t, store.Save(ctx, "abc", ana, time.Hour))
		m := session.NewManager("secret", time.Hour, store)
		_, err = m.Verify(ctx, token)
		assert.ErrorIs(t, err, session.ErrInvalidToken)
	})

	t.Run("garbage and empty tokens", func(t *testing.T) {
		m := session.NewManager("secret", time.Hour, session.NewMemoryStore())
		_, err := m.Verify(ctx, "not.a.token")
		assert.ErrorIs(t, err, session.ErrInvalidToken)
		_, err = m.Verify(ctx, "")
		assert.ErrorIs(t, err, session.ErrNoSession)
	})

	t.Run("store failure on issue", func(t *testing.T) {
		store := mocks.NewStore(t)
		store.On("Save", ctx, mock.AnythingOfType("string"), ana, time.Hour).Return(errors.New("redis down"))
		m := session.NewManager("secret", time.Hour, store)
		token, err := m.Issue(ctx, ana)
		require.Error(t, err)
		assert.Empty(t, token)
	})
}
