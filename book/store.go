package book

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

/* Store is the single source of truth for one owner's list while the catalog is open.
 * Every mutation rewrites the whole list to the slot. Mutations are serialized by mu, so
 * there is at most one in flight, and a failed write restores the previous list.
 */
type Store struct {
	mu     sync.Mutex
	slot   Slot
	key    string
	seed   []Book
	books  []Book
	logger zerolog.Logger
	// loaded is false until the first Load and again after Invalidate
	loaded bool
}

// NewStore creates a store for the list under key. seed is written the first time the slot is found empty.
func NewStore(slot Slot, key string, seed []Book, logger zerolog.Logger) *Store {
	return &Store{
		slot:   slot,
		key:    key,
		seed:   seed,
		logger: logger.With().Str("slot_key", key).Logger(),
	}
}

// Load reads the persisted list. It never fails: read or decode errors are logged and
// leave the store empty.
func (s *Store) Load(ctx context.Context) []Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Open loads the list unless it is already in memory
func (s *Store) Open(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		s.load(ctx)
	}
}

// Invalidate makes the next Open read the slot again. The in-memory list stays usable,
// so a mutation already holding this store still goes through the same lock.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
}

// Loaded reports whether the list reflects a read since the last Invalidate
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

func (s *Store) load(ctx context.Context) []Book {
	s.loaded = true
	data, err := s.slot.Read(ctx, s.key)
	if errors.Is(err, ErrSlotEmpty) {
		s.books = clone(s.seed)
		if err := s.persist(ctx); err != nil {
			s.logger.Error().Err(err).Msg("persisting seed list")
		}
		return clone(s.books)
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("loading books")
		s.books = []Book{}
		return []Book{}
	}
	list, err := Decode(data)
	if err != nil {
		s.logger.Error().Err(err).Msg("loading books")
		s.books = []Book{}
		return []Book{}
	}
	s.books = list
	return clone(s.books)
}

// List returns a copy of the current list
func (s *Store) List() []Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.books)
}

// Get returns the book with the given id
func (s *Store) Get(id int64) (Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return Book{}, ErrNotFound
	}
	return s.books[i], nil
}

// Add assigns the next id to b, appends it and persists
func (s *Store) Add(ctx context.Context, b Book) ([]Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b.ID = NextID(s.books)
	previous := s.books
	s.books = append(clone(s.books), b)
	if err := s.commit(ctx, previous); err != nil {
		return clone(s.books), fmt.Errorf("adding book: %w", err)
	}
	return clone(s.books), nil
}

// Update replaces the fields of the book with the given id. The id carried by fields is ignored.
// A missing id is logged and leaves the list unchanged.
func (s *Store) Update(ctx context.Context, id int64, fields Book) ([]Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.books
	next := clone(s.books)
	i := s.indexOf(id)
	if i < 0 {
		s.logger.Warn().Int64("book_id", id).Msg("update of unknown book ignored")
	} else {
		fields.ID = id
		next[i] = fields
	}
	s.books = next
	if err := s.commit(ctx, previous); err != nil {
		return clone(s.books), fmt.Errorf("updating book: %w", err)
	}
	return clone(s.books), nil
}

// Modify applies change to the stored record under the store lock and persists the result.
// Unlike Update it reports a missing id with ErrNotFound.
func (s *Store) Modify(ctx context.Context, id int64, change func(*Book) error) (Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Book{}, ErrNotFound
	}
	b := s.books[i]
	if err := change(&b); err != nil {
		return Book{}, err
	}
	b.ID = id

	previous := s.books
	next := clone(s.books)
	next[i] = b
	s.books = next
	if err := s.commit(ctx, previous); err != nil {
		return Book{}, fmt.Errorf("updating book: %w", err)
	}
	return b, nil
}

// Remove drops the book with the given id. Removing a missing id is a no-op.
func (s *Store) Remove(ctx context.Context, id int64) ([]Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.books
	next := make([]Book, 0, len(s.books))
	for _, b := range s.books {
		if b.ID != id {
			next = append(next, b)
		}
	}
	if len(next) == len(previous) {
		s.logger.Debug().Int64("book_id", id).Msg("remove of unknown book")
	}
	s.books = next
	if err := s.commit(ctx, previous); err != nil {
		return clone(s.books), fmt.Errorf("removing book: %w", err)
	}
	return clone(s.books), nil
}

// commit persists the current list and restores previous when the write fails
func (s *Store) commit(ctx context.Context, previous []Book) error {
	if err := s.persist(ctx); err != nil {
		s.books = previous
		s.logger.Error().Err(err).Msg("persisting books, rolled back")
		return err
	}
	return nil
}

func (s *Store) persist(ctx context.Context) error {
	data, err := Encode(s.books)
	if err != nil {
		return err
	}
	if err := s.slot.Write(ctx, s.key, data); err != nil {
		return fmt.Errorf("writing slot: %w", err)
	}
	return nil
}

func (s *Store) indexOf(id int64) int {
	for i, b := range s.books {
		if b.ID == id {
			return i
		}
	}
	return -1
}

func clone(list []Book) []Book {
	out := make([]Book, len(list))
	copy(out, list)
	return out
}
