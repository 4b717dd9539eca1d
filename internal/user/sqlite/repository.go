package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/glebarez/go-sqlite" // registers the "sqlite" driver
	"github.com/jmoiron/sqlx"
	"github.com/marcelsud/bookshelf/internal/user"
)

type Repository struct {
	DB *sqlx.DB
}

// NewRepository opens the database at path and creates the users table
func NewRepository(ctx context.Context, path string) (*Repository, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	r := NewRepositoryWithDB(db)
	if err := r.CreateTable(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

// NewRepositoryWithDB shares a connection, e.g. with the book slot
func NewRepositoryWithDB(db *sqlx.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	var u user.User
	err := r.DB.GetContext(ctx, &u, `SELECT id, username, email, password_hash, created_at FROM users WHERE email = ?`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return user.User{}, user.ErrNotFound
	}
	if err != nil {
		return user.User{}, fmt.Errorf("selecting user: %w", err)
	}
	return u, nil
}

func (r *Repository) Insert(ctx context.Context, u user.User) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO users (username, email, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		u.Username, u.Email, u.PasswordHash, u.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, user.ErrEmailTaken
		}
		return 0, fmt.Errorf("inserting user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading user id: %w", err)
	}
	return id, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.DB.GetContext(ctx, &n, `SELECT COUNT(*) FROM users`); err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	return n, nil
}

func (r *Repository) CreateTable(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS users (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  username TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  created_at DATETIME NOT NULL
);`
	if _, err := r.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}
	return nil
}

func (r *Repository) Close() error {
	return r.DB.Close()
}
