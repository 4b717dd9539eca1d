package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewMemoryStore()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Save(ctx, "id", Marker{Username: "ana", Email: "ana@example.com"}, time.Hour))

	m, err := s.Get(ctx, "id")
	require.NoError(t, err)
	assert.Equal(t, "ana", m.Username)

	now = now.Add(time.Hour)
	_, err = s.Get(ctx, "id")
	assert.ErrorIs(t, err, ErrNoSession)

	require.NoError(t, s.Delete(ctx, "missing"))
}
