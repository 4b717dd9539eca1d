package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/marcelsud/bookshelf/internal/user"
)

const uniqueViolation = "23505"

type Repository struct {
	DB *sqlx.DB
}

// NewRepository connects with pool defaults (25, 5, 5 min)
func NewRepository(connectionString string) (*Repository, error) {
	return NewRepositoryWithPoolConfig(connectionString, 25, 5, 5)
}

func NewRepositoryWithPoolConfig(connectionString string, maxOpenConns, maxIdleConns, maxLifeMinutes int) (*Repository, error) {
	db, err := sqlx.Connect("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
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
	return NewRepositoryWithDB(db), nil
}

func NewRepositoryWithDB(db *sqlx.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	var u user.User
	query := `SELECT id, username, email, password_hash, created_at FROM users WHERE email = $1`
	err := r.DB.QueryRowxContext(ctx, query, email).StructScan(&u)
	if errors.Is(err, sql.ErrNoRows) {
		return user.User{}, user.ErrNotFound
	}
	if err != nil {
		return user.User{}, fmt.Errorf("selecting user: %w", err)
	}
	return u, nil
}

func (r *Repository) Insert(ctx context.Context, u user.User) (int64, error) {
	query := `INSERT INTO users (username, email, password_hash, created_at) VALUES ($1, $2, $3, $4) RETURNING id`
	var id int64
	err := r.DB.QueryRowxContext(ctx, query, u.Username, u.Email, u.PasswordHash, u.CreatedAt).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return 0, user.ErrEmailTaken
		}
		return 0, fmt.Errorf("inserting user: %w", err)
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
	query := `
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := r.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}
	return nil
}

func (r *Repository) Close() error {
	return r.DB.Close()
}
