package user

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidationError lists the fields rejected by Register
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "invalid registration: " + strings.Join(parts, "; ")
}

type UseCase interface {
	Register(ctx context.Context, username, email, password string) (User, error)
	Login(ctx context.Context, email, password string) (User, error)
	Count(ctx context.Context) (int, error)
}

type Service struct {
	Repo Repository
	cost int
}

// NewService creates a new user service with dependency injection
func NewService(repo Repository) *Service {
	return &Service{
		Repo: repo,
		cost: bcrypt.DefaultCost,
	}
}

// NewServiceWithCost is NewService with a custom bcrypt cost, used by tests
func NewServiceWithCost(repo Repository, cost int) *Service {
	return &Service{
		Repo: repo,
		cost: cost,
	}
}

func (s *Service) Register(ctx context.Context, username, email, password string) (User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	errs := map[string]string{}
	if username == "" {
		errs["username"] = "username is required"
	}
	if !emailPattern.MatchString(email) {
		errs["email"] = "email is invalid"
	}
	if password == "" {
		errs["password"] = "password is required"
	}
	if len(errs) > 0 {
		return User{}, &ValidationError{Fields: errs}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return User{}, fmt.Errorf("hashing password: %w", err)
	}
	u := User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	id, err := s.Repo.Insert(ctx, u)
	if err != nil {
		return User{}, fmt.Errorf("inserting user: %w", err)
	}
	u.ID = id
	return u.Public(), nil
}

// Login never writes: it only reads the account and compares the hash
func (s *Service) Login(ctx context.Context, email, password string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return User{}, ErrInvalidCredentials
	}
	u, err := s.Repo.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return User{}, ErrInvalidCredentials
	}
	if err != nil {
		return User{}, fmt.Errorf("selecting user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, fmt.Errorf("checking password: %w", err)
	}
	return u.Public(), nil
}

func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.Repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	return n, nil
}
