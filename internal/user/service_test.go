package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/marcelsud/bookshelf/internal/user"
	"github.com/marcelsud/bookshelf/internal/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("Insert", ctx, mock.MatchedBy(func(u user.User) bool {
			return u.Email == "ana@example.com" && u.Username == "ana" &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")) == nil
		})).Return(int64(7), nil)

		s := user.NewServiceWithCost(repo, bcrypt.MinCost)
		u, err := s.Register(ctx, " ana ", "Ana@Example.com", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, int64(7), u.ID)
		assert.Equal(t, "ana@example.com", u.Email)
		assert.Empty(t, u.PasswordHash)
	})

	t.Run("invalid fields", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		s := user.NewServiceWithCost(repo, bcrypt.MinCost)
		_, err := s.Register(ctx, "", "not-an-email", "")
		var verr *user.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Fields, 3)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("Insert", ctx, mock.Anything).Return(int64(0), user.ErrEmailTaken)
		s := user.NewServiceWithCost(repo, bcrypt.MinCost)
		_, err := s.Register(ctx, "ana", "ana@example.com", "s3cret")
		assert.ErrorIs(t, err, user.ErrEmailTaken)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	stored := user.User{ID: 1, Username: "ana", Email: "ana@example.com", PasswordHash: hashed(t, "s3cret")}

	t.Run("correct password", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("GetByEmail", ctx, "ana@example.com").Return(stored, nil)
		s := user.NewService(repo)
		u, err := s.Login(ctx, "ana@example.com", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, "ana", u.Username)
		assert.Equal(t, "ana@example.com", u.Email)
		assert.Empty(t, u.PasswordHash)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("GetByEmail", ctx, "ana@example.com").Return(stored, nil)
		s := user.NewService(repo)
		u, err := s.Login(ctx, "ana@example.com", "guess")
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
		assert.Empty(t, u)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("GetByEmail", ctx, "bob@example.com").Return(user.User{}, user.ErrNotFound)
		s := user.NewService(repo)
		_, err := s.Login(ctx, "bob@example.com", "s3cret")
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("missing fields", func(t *testing.T) {
		s := user.NewService(mocks.NewRepository(t))
		_, err := s.Login(ctx, "", "")
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("GetByEmail", ctx, "ana@example.com").Return(user.User{}, errors.New("db down"))
		s := user.NewService(repo)
		_, err := s.Login(ctx, "ana@example.com", "s3cret")
		require.Error(t, err)
		assert.NotErrorIs(t, err, user.ErrInvalidCredentials)
	})
}

func TestCount(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewRepository(t)
	repo.On("Count", ctx).Return(3, nil)
	n, err := user.NewService(repo).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
