package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/marcelsud/bookshelf/book"
)

/*
PostgreSQL implementation of book.Slot

One row per catalog: the key is the slot key and payload the serialized list.
Writes are upserts, so the first write creates the row.
*/

type Slot struct {
	DB *sql.DB
}

// NewSlot cria uma nova instância com pool padrão (25, 5, 5 min)
func NewSlot(connectionString string) (*Slot, error) {
	return NewSlotWithPoolConfig(connectionString, 25, 5, 5)
}

// NewSlotWithPoolConfig opens the database with a custom pool
// maxOpenConns: máximo de conexões simultâneas (0 = ilimitado)
// maxIdleConns: máximo de conexões inativas mantidas no pool
// maxLifeMinutes: duração máxima em minutos que uma conexão pode ser reutilizada
func NewSlotWithPoolConfig(connectionString string, maxOpenConns, maxIdleConns, maxLifeMinutes int) (*Slot, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
	}
	if maxIdleConns > 0 {
		db.SetMaxIdleConns(maxIdleConns)
	}
	if maxLifeMinutes > 0 {
		db.SetConnMaxLifetime(time.Duration(maxLifeMinutes) * time.Minute)
	}

	return &Slot{
		DB: db,
	}, nil
}

// Read busca a lista serializada de um catálogo
func (s *Slot) Read(ctx context.Context, key string) ([]byte, error) {
	query := "SELECT payload FROM book_slots WHERE key = $1"

	var payload string
	err := s.DB.QueryRowContext(ctx, query, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, book.ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("reading slot: %w", err)
	}

	return []byte(payload), nil
}

// Write substitui a lista inteira
func (s *Slot) Write(ctx context.Context, key string, payload []byte) error {
	query := `
		INSERT INTO book_slots (key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
	`

	if _, err := s.DB.ExecContext(ctx, query, key, string(payload)); err != nil {
		return fmt.Errorf("writing slot: %w", err)
	}

	return nil
}

// Close fecha a conexão com o banco de dados
func (s *Slot) Close(ctx context.Context) error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}

// CreateTable cria a tabela book_slots
func (s *Slot) CreateTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS book_slots (
			key TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`

	if _, err := s.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("creating table: %w", err)
	}

	return nil
}

// DropTable remove a tabela book_slots (útil para testes)
func (s *Slot) DropTable(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, "DROP TABLE IF EXISTS book_slots CASCADE"); err != nil {
		return fmt.Errorf("dropping table: %w", err)
	}

	return nil
}
