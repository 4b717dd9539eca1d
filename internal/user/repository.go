package user

import (
	"context"
	"errors"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Reader interface {
	// GetByEmail returns ErrNotFound when no account uses email
	GetByEmail(ctx context.Context, email string) (User, error)
	Count(ctx context.Context) (int, error)
}

type Writer interface {
	// Insert returns ErrEmailTaken when the email is already registered
	Insert(ctx context.Context, u User) (int64, error)
}

type Repository interface {
	Reader
	Writer
}
