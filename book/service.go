package book

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

/*
 * - Quando uma struct representa DADOS deveria usar sempre value semantics e não pointer (ex: Book) .
 * Se a struct representa uma API deveria ser pointer (ex: Service).
 */

// UseCase defines the catalog operations available to an authenticated owner
type UseCase interface {
	List(ctx context.Context, owner string, q Query) (Page, error)
	Get(ctx context.Context, owner string, id int64) (Book, error)
	Create(ctx context.Context, owner string, f Form) (Book, error)
	Update(ctx context.Context, owner string, id int64, f Form) (Book, error)
	Delete(ctx context.Context, owner string, id int64) error
	ToggleStatus(ctx context.Context, owner string, id int64) (Book, error)
	SetDescription(ctx context.Context, owner string, id int64, description string) (Book, error)
	SetCover(ctx context.Context, owner string, id int64, cover CoverUpload) (Book, error)
	Stats(ctx context.Context, owner string) (Stats, error)
	Forget(owner string)
}

// Service keeps one Store per owner, keyed by the lowercased email. A store is loaded the
// first time its owner is seen and reloaded after Forget, so every session starts from the
// persisted list.
type Service struct {
	Slot   Slot
	seed   []Book
	logger zerolog.Logger

	mu     sync.Mutex
	stores map[string]*Store
}

// NewService creates a new catalog service with dependency injection
func NewService(slot Slot, seed []Book, logger zerolog.Logger) *Service {
	return &Service{
		Slot:   slot,
		seed:   seed,
		logger: logger,
		stores: make(map[string]*Store),
	}
}

// normalizeOwner makes emails that differ only in case or surrounding spaces share a catalog
func normalizeOwner(owner string) string {
	return strings.ToLower(strings.TrimSpace(owner))
}

// store returns the single Store of owner. Slot I/O happens under the store's own lock,
// never under s.mu, so a slow first read only blocks that owner.
func (s *Service) store(ctx context.Context, owner string) (*Store, error) {
	owner = normalizeOwner(owner)
	if owner == "" {
		return nil, fmt.Errorf("owner is required")
	}
	s.mu.Lock()
	st, ok := s.stores[owner]
	if !ok {
		st = NewStore(s.Slot, SlotKey(owner), s.seed, s.logger)
		s.stores[owner] = st
	}
	s.mu.Unlock()

	st.Open(ctx)
	return st, nil
}

func (s *Service) List(ctx context.Context, owner string, q Query) (Page, error) {
	st, err := s.store(ctx, owner)
	if err != nil {
		return Page{}, fmt.Errorf("opening catalog: %w", err)
	}
	return VisiblePage(st.List(), q), nil
}

func (s *Service) Get(ctx context.Context, owner string, id int64) (Book, error) {
	st, err := s.store(ctx, owner)
	if err != nil {
		return Book{}, fmt.Errorf("opening catalog: %w", err)
	}
	b, err := st.Get(id)
	if err != nil {
		return Book{}, fmt.Errorf("selecting book: %w", err)
	}
	return b, nil
}

func (s *Service) Create(ctx context.Context, owner string, f Form) (Book, error) {
	st, err := s.store(ctx, owner)
	if err != nil {
		return Book{}, fmt.Errorf("opening catalog: %w", err)
	}
	b, err := f.Validate()
	if err != nil {
		return Book{}, fmt.Errorf("validating book: %w", err)
	}
	list, err := st.Add(ctx, b)
	if err != nil {
		return Book{}, fmt.Errorf("inserting book: %w", err)
	}
	return list[len(list)-1], nil
}

// Update replaces a book with the form's fields. Without a new cover the stored one is kept.
func (s *Service) Update(ctx context.Context, owner string, id int64, f Form) (Book, error) {
	b, err := f.Validate()
	if err != nil {
		return Book{}, fmt.Errorf("validating book: %w", err)
	}
	return s.patch(ctx, owner, id, func(current *Book) error {
		if b.CoverImage == "" {
			b.CoverImage = current.CoverImage
		}
		*current = b
		return nil
	})
}

func (s *Service) Delete(ctx context.Context, owner string, id int64) error {
	st, err := s.store(ctx, owner)
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}
	if _, err := st.Remove(ctx, id); err != nil {
		return fmt.Errorf("deleting book: %w", err)
	}
	return nil
}

func (s *Service) ToggleStatus(ctx context.Context, owner string, id int64) (Book, error) {
	return s.patch(ctx, owner, id, func(b *Book) error {
		b.Status = b.Status.Next()
		return nil
	})
}

func (s *Service) SetDescription(ctx context.Context, owner string, id int64, description string) (Book, error) {
	return s.patch(ctx, owner, id, func(b *Book) error {
		b.Description = strings.TrimSpace(description)
		return nil
	})
}

func (s *Service) SetCover(ctx context.Context, owner string, id int64, cover CoverUpload) (Book, error) {
	return s.patch(ctx, owner, id, func(b *Book) error {
		url, err := cover.DataURL()
		if err != nil {
			return &ValidationError{Fields: FieldErrors{"coverImage": err.Error()}}
		}
		b.CoverImage = url
		return nil
	})
}

func (s *Service) Stats(ctx context.Context, owner string) (Stats, error) {
	st, err := s.store(ctx, owner)
	if err != nil {
		return Stats{}, fmt.Errorf("opening catalog: %w", err)
	}
	return ComputeStats(st.List()), nil
}

// Forget marks the store of owner for reload. The Store itself is kept so that
// one catalog never has two Stores writing its slot.
func (s *Service) Forget(owner string) {
	s.mu.Lock()
	st, ok := s.stores[normalizeOwner(owner)]
	s.mu.Unlock()
	if ok {
		st.Invalidate()
	}
}

// Snapshot aggregates the stats of every open catalog. Forgotten catalogs are left out.
func (s *Service) Snapshot() (Stats, int) {
	s.mu.Lock()
	stores := make([]*Store, 0, len(s.stores))
	for _, st := range s.stores {
		stores = append(stores, st)
	}
	s.mu.Unlock()

	total := ComputeStats(nil)
	open := 0
	for _, st := range stores {
		if !st.Loaded() {
			continue
		}
		total = total.Add(ComputeStats(st.List()))
		open++
	}
	return total, open
}

// patch merges a change into the stored record and keeps its id
func (s *Service) patch(ctx context.Context, owner string, id int64, change func(*Book) error) (Book, error) {
	st, err := s.store(ctx, owner)
	if err != nil {
		return Book{}, fmt.Errorf("opening catalog: %w", err)
	}
	b, err := st.Modify(ctx, id, change)
	if err != nil {
		return Book{}, fmt.Errorf("updating book: %w", err)
	}
	return b, nil
}
