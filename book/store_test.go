package book_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/marcelsud/bookshelf/book"
	"github.com/marcelsud/bookshelf/book/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memorySlot keeps payloads in a map, like a local storage area
type memorySlot struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemorySlot() *memorySlot {
	return &memorySlot{data: map[string][]byte{}}
}

func (m *memorySlot) Read(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.data[key]
	if !ok {
		return nil, book.ErrSlotEmpty
	}
	return d, nil
}

func (m *memorySlot) Write(_ context.Context, key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), payload...)
	return nil
}

func (m *memorySlot) Close(context.Context) error { return nil }

func newBook(title string) book.Book {
	return book.Book{
		Title:    title,
		Author:   "Some Author",
		Category: book.Technology,
		Status:   book.Unread,
		ISBN:     "1234567890",
	}
}

func TestStoreLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("empty slot gets the seed", func(t *testing.T) {
		slot := newMemorySlot()
		s := book.NewStore(slot, "books:a", book.DefaultSeed(), zerolog.Nop())
		list := s.Load(ctx)
		assert.Equal(t, book.DefaultSeed(), list)

		persisted, err := slot.Read(ctx, "books:a")
		require.NoError(t, err)
		decoded, err := book.Decode(persisted)
		require.NoError(t, err)
		assert.Equal(t, list, decoded)
	})

	t.Run("corrupt payload loads as empty", func(t *testing.T) {
		slot := newMemorySlot()
		require.NoError(t, slot.Write(ctx, "books:a", []byte("{not json")))
		s := book.NewStore(slot, "books:a", book.DefaultSeed(), zerolog.Nop())
		assert.Empty(t, s.Load(ctx))
	})

	t.Run("read failure loads as empty", func(t *testing.T) {
		slot := mocks.NewSlot(t)
		slot.On("Read", ctx, "books:a").Return(nil, errors.New("unavailable"))
		s := book.NewStore(slot, "books:a", book.DefaultSeed(), zerolog.Nop())
		assert.Empty(t, s.Load(ctx))
		assert.Empty(t, s.List())
	})
}

func TestStoreOpenAndInvalidate(t *testing.T) {
	ctx := context.Background()
	slot := mocks.NewSlot(t)
	slot.On("Read", ctx, "books:a").Return([]byte(`[]`), nil).Twice()
	s := book.NewStore(slot, "books:a", nil, zerolog.Nop())
	assert.False(t, s.Loaded())

	s.Open(ctx)
	s.Open(ctx)
	assert.True(t, s.Loaded())

	s.Invalidate()
	assert.False(t, s.Loaded())
	s.Open(ctx)
	assert.True(t, s.Loaded())
}

func TestStoreAdd(t *testing.T) {
	ctx := context.Background()
	s := book.NewStore(newMemorySlot(), "books:a", nil, zerolog.Nop())
	s.Load(ctx)

	list, err := s.Add(ctx, newBook("First"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), list[0].ID)

	_, err = s.Add(ctx, newBook("Second"))
	require.NoError(t, err)
	_, err = s.Remove(ctx, 1)
	require.NoError(t, err)

	list, err = s.Add(ctx, newBook("Third"))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(3), list[1].ID)
	assert.Equal(t, "Third", list[1].Title)
}

func TestStoreUpdate(t *testing.T) {
	ctx := context.Background()
	s := book.NewStore(newMemorySlot(), "books:a", book.DefaultSeed(), zerolog.Nop())
	s.Load(ctx)

	t.Run("keeps id and position", func(t *testing.T) {
		changed := newBook("Renamed")
		changed.ID = 99
		list, err := s.Update(ctx, 2, changed)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, int64(2), list[1].ID)
		assert.Equal(t, "Renamed", list[1].Title)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		before := s.List()
		list, err := s.Update(ctx, 42, newBook("Ghost"))
		require.NoError(t, err)
		assert.Equal(t, before, list)
	})
}

func TestStoreModify(t *testing.T) {
	ctx := context.Background()
	s := book.NewStore(newMemorySlot(), "books:a", book.DefaultSeed(), zerolog.Nop())
	s.Load(ctx)

	b, err := s.Modify(ctx, 3, func(b *book.Book) error {
		b.Status = b.Status.Next()
		b.ID = 7
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), b.ID)
	assert.Equal(t, book.Reading, b.Status)

	_, err = s.Modify(ctx, 42, func(*book.Book) error { return nil })
	assert.ErrorIs(t, err, book.ErrNotFound)

	boom := errors.New("boom")
	_, err = s.Modify(ctx, 1, func(*book.Book) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestStoreRemove(t *testing.T) {
	ctx := context.Background()
	s := book.NewStore(newMemorySlot(), "books:a", book.DefaultSeed(), zerolog.Nop())
	s.Load(ctx)

	list, err := s.Remove(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, int64(3), list[1].ID)

	again, err := s.Remove(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, list, again)

	_, err = s.Get(2)
	assert.ErrorIs(t, err, book.ErrNotFound)
}

func TestStoreRollsBackOnWriteFailure(t *testing.T) {
	ctx := context.Background()
	slot := mocks.NewSlot(t)
	slot.On("Read", ctx, "books:a").Return(nil, book.ErrSlotEmpty).Once()
	slot.On("Write", ctx, "books:a", mock.Anything).Return(nil).Once()
	slot.On("Write", ctx, "books:a", mock.Anything).Return(errors.New("quota exceeded"))

	s := book.NewStore(slot, "books:a", book.DefaultSeed(), zerolog.Nop())
	before := s.Load(ctx)

	list, err := s.Add(ctx, newBook("Too Much"))
	require.Error(t, err)
	assert.Equal(t, before, list)

	list, err = s.Remove(ctx, 1)
	require.Error(t, err)
	assert.Equal(t, before, list)

	_, err = s.Modify(ctx, 1, func(b *book.Book) error {
		b.Title = "Changed"
		return nil
	})
	require.Error(t, err)
	assert.Equal(t, before, s.List())
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	slot := newMemorySlot()
	s := book.NewStore(slot, "books:a", nil, zerolog.Nop())
	s.Load(ctx)

	full := newBook("Full Record")
	full.Category = book.NonFiction
	full.Status = book.Completed
	full.Description = "notes"
	full.CoverImage = "data:image/png;base64,AAAA"
	_, err := s.Add(ctx, full)
	require.NoError(t, err)
	list, err := s.Add(ctx, newBook("Bare"))
	require.NoError(t, err)

	reopened := book.NewStore(slot, "books:a", book.DefaultSeed(), zerolog.Nop())
	assert.Equal(t, list, reopened.Load(ctx))
}
