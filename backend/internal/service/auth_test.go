package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// --- Mocks ---

type MockAuthStorage struct {
	SaveUserFunc    func(ctx context.Context, email domain.Email, passHash string) (domain.UserId, error)
	UserFunc        func(ctx context.Context, id domain.UserId) (domain.User, error)
	UserByEmailFunc func(ctx context.Context, email domain.Email) (domain.User, error)
}

func (m *MockAuthStorage) SaveUser(ctx context.Context, email domain.Email, passHash string) (domain.UserId, error) {
	if m.SaveUserFunc != nil {
		return m.SaveUserFunc(ctx, email, passHash)
	}
	return 1, nil
}

func (m *MockAuthStorage) User(ctx context.Context, id domain.UserId) (domain.User, error) {
	if m.UserFunc != nil {
		return m.UserFunc(ctx, id)
	}
	return domain.User{Id: id}, nil
}

func (m *MockAuthStorage) UserByEmail(ctx context.Context, email domain.Email) (domain.User, error) {
	if m.UserByEmailFunc != nil {
		return m.UserByEmailFunc(ctx, email)
	}
	// Default success case for login tests
	passHash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	return domain.User{Id: 1, Email: email, PassHash: string(passHash)}, nil
}

type MockJwt struct {
	NewTokenFunc func(user domain.User) (string, error)
}

func (m *MockJwt) NewToken(user domain.User) (string, error) {
	if m.NewTokenFunc != nil {
		return m.NewTokenFunc(user)
	}
	return "test_token", nil
}

// --- Tests ---

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("stores lower-cased email and bcrypt hash", func(t *testing.T) {
		// Arrange
		var savedHash string
		storage := &MockAuthStorage{
			SaveUserFunc: func(ctx context.Context, email domain.Email, passHash string) (domain.UserId, error) {
				assert.Equal(t, "test@example.com", email)
				savedHash = passHash
				return 7, nil
			},
			UserFunc: func(ctx context.Context, id domain.UserId) (domain.User, error) {
				return domain.User{Id: id, Email: "test@example.com"}, nil
			},
		}
		service := NewAuth(storage, &MockJwt{})

		// Act
		user, err := service.Register(ctx, domain.Credentials{Email: "Test@Example.com", Password: "password123"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, domain.UserId(7), user.Id)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(savedHash), []byte("password123")))
	})

	t.Run("duplicate email", func(t *testing.T) {
		storage := &MockAuthStorage{
			SaveUserFunc: func(ctx context.Context, email domain.Email, passHash string) (domain.UserId, error) {
				return 0, internal_errors.Conflict("email already exists")
			},
		}
		service := NewAuth(storage, &MockJwt{})

		_, err := service.Register(ctx, domain.Credentials{Email: "test@example.com", Password: "password123"})
		assert.True(t, internal_errors.IsConflict(err))
		assert.Equal(t, "email already exists", err.Error())
	})

	t.Run("invalid credentials", func(t *testing.T) {
		called := false
		storage := &MockAuthStorage{
			SaveUserFunc: func(ctx context.Context, email domain.Email, passHash string) (domain.UserId, error) {
				called = true
				return 1, nil
			},
		}
		service := NewAuth(storage, &MockJwt{})

		_, err := service.Register(ctx, domain.Credentials{Email: "nope", Password: "short"})

		var verr *internal_errors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Problems, 2)
		assert.False(t, called)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		service := NewAuth(&MockAuthStorage{}, &MockJwt{})

		token, err := service.Login(ctx, domain.Credentials{Email: "User@Example.com", Password: "password"})
		require.NoError(t, err)
		assert.Equal(t, "test_token", token)
	})

	t.Run("wrong password", func(t *testing.T) {
		service := NewAuth(&MockAuthStorage{}, &MockJwt{})

		_, err := service.Login(ctx, domain.Credentials{Email: "user@example.com", Password: "wrong-password"})
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, internal_errors.StatusCode(err))
	})

	t.Run("unknown user looks like wrong password", func(t *testing.T) {
		storage := &MockAuthStorage{
			UserByEmailFunc: func(ctx context.Context, email domain.Email) (domain.User, error) {
				return domain.User{}, internal_errors.NotFound("User not found")
			},
		}
		service := NewAuth(storage, &MockJwt{})

		_, err := service.Login(ctx, domain.Credentials{Email: "ghost@example.com", Password: "password"})
		assert.Equal(t, http.StatusUnauthorized, internal_errors.StatusCode(err))
		assert.Equal(t, "Invalid credentials", err.Error())
	})

	t.Run("token error", func(t *testing.T) {
		jwtErr := errors.New("signing failed")
		service := NewAuth(&MockAuthStorage{}, &MockJwt{NewTokenFunc: func(user domain.User) (string, error) {
			return "", jwtErr
		}})

		_, err := service.Login(ctx, domain.Credentials{Email: "user@example.com", Password: "password"})
		assert.ErrorIs(t, err, jwtErr)
	})
}
