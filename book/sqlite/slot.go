package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/glebarez/go-sqlite" // pure Go SQLite driver, registers "sqlite"
	"github.com/marcelsud/bookshelf/book"
)

/* SQLite implementation of book.Slot, the default backend for local runs and the CLI */

type Slot struct {
	DB *sql.DB
}

// NewSlot opens (or creates) the database file at path and ensures the table exists
func NewSlot(ctx context.Context, path string) (*Slot, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	s := NewSlotWithDB(db)
	if err := s.CreateTable(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewSlotWithDB wraps an already opened database
func NewSlotWithDB(db *sql.DB) *Slot {
	return &Slot{DB: db}
}

func (s *Slot) Read(ctx context.Context, key string) ([]byte, error) {
	var payload string
	err := s.DB.QueryRowContext(ctx, "SELECT payload FROM book_slots WHERE key = ?", key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, book.ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("reading slot: %w", err)
	}
	return []byte(payload), nil
}

func (s *Slot) Write(ctx context.Context, key string, payload []byte) error {
	stmt, err := s.DB.PrepareContext(ctx, `
		insert into book_slots (key, payload, updated_at)
		values (?, ?, CURRENT_TIMESTAMP)
		on conflict(key) do update set payload = excluded.payload, updated_at = CURRENT_TIMESTAMP`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()
	if _, err := stmt.ExecContext(ctx, key, string(payload)); err != nil {
		return fmt.Errorf("executing statement: %w", err)
	}
	return nil
}

func (s *Slot) CreateTable(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS book_slots (
  key TEXT PRIMARY KEY,
  payload TEXT NOT NULL,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`
	if _, err := s.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("creating table: %w", err)
	}
	return nil
}

func (s *Slot) Close(ctx context.Context) error {
	if err := s.DB.Close(); err != nil {
		return fmt.Errorf("closing slot: %w", err)
	}
	return nil
}
