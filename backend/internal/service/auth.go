package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/logger"
	"github.com/itchan-dev/forum/shared/validation"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, creds domain.Credentials) (domain.User, error)
	Login(ctx context.Context, creds domain.Credentials) (string, error)
}

type Auth struct {
	storage AuthStorage
	jwt     Jwt
}

type AuthStorage interface {
	SaveUser(ctx context.Context, email domain.Email, passHash string) (domain.UserId, error)
	User(ctx context.Context, id domain.UserId) (domain.User, error)
	UserByEmail(ctx context.Context, email domain.Email) (domain.User, error)
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

func NewAuth(storage AuthStorage, jwt Jwt) *Auth {
	return &Auth{
		storage: storage,
		jwt:     jwt,
	}
}

// Register creates an account. Emails are compared case-insensitively,
// an already registered email is a Conflict.
func (a *Auth) Register(ctx context.Context, creds domain.Credentials) (domain.User, error) {
	creds.Email = strings.ToLower(strings.TrimSpace(creds.Email))
	if err := validation.Struct(creds); err != nil {
		return domain.User{}, err
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.User{}, err
	}

	id, err := a.storage.SaveUser(ctx, creds.Email, string(passHash))
	if err != nil {
		return domain.User{}, err
	}
	return a.storage.User(ctx, id)
}

// Login checks credentials and returns an access token.
// Unknown email and wrong password give the same answer.
func (a *Auth) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))

	user, err := a.storage.UserByEmail(ctx, email)
	if err != nil {
		// to not leak existing users
		if errors.IsNotFound(err) {
			return "", &errors.ErrorWithStatusCode{Message: "Invalid credentials", StatusCode: http.StatusUnauthorized}
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(creds.Password)); err != nil {
		logger.FromContext(ctx).Info("password verification failed", "user_id", user.Id)
		return "", &errors.ErrorWithStatusCode{Message: "Invalid credentials", StatusCode: http.StatusUnauthorized}
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "user_id", user.Id, "error", err)
		return "", err
	}
	return token, nil
}
