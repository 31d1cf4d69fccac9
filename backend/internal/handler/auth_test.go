package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	mw "github.com/itchan-dev/forum/shared/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h := newTestHandler()
		rr := serve(http.MethodPost, "/v1/auth/register", "/v1/auth/register", `{"email":"a@example.com","password":"password123"}`, nil, h.Register)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), "a@example.com")
	})

	t.Run("duplicate email is 409", func(t *testing.T) {
		h := newTestHandler()
		h.auth = &MockAuthService{RegisterFunc: func(ctx context.Context, creds domain.Credentials) (domain.User, error) {
			return domain.User{}, internal_errors.Conflict("email already exists")
		}}

		rr := serve(http.MethodPost, "/v1/auth/register", "/v1/auth/register", `{"email":"a@example.com","password":"password123"}`, nil, h.Register)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Contains(t, rr.Body.String(), "email already exists")
	})

	t.Run("bad email and short password are both reported", func(t *testing.T) {
		h := newTestHandler()
		rr := serve(http.MethodPost, "/v1/auth/register", "/v1/auth/register", `{"email":"nope","password":"short"}`, nil, h.Register)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "email must be a valid email")
		assert.Contains(t, rr.Body.String(), "password must be at least 8 characters")
	})

	t.Run("empty body", func(t *testing.T) {
		h := newTestHandler()
		rr := serve(http.MethodPost, "/v1/auth/register", "/v1/auth/register", "", nil, h.Register)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Body is empty")
	})
}

func TestLogin(t *testing.T) {
	t.Run("sets cookie", func(t *testing.T) {
		h := newTestHandler()
		h.auth = &MockAuthService{LoginFunc: func(ctx context.Context, creds domain.Credentials) (string, error) {
			return "jwt-token", nil
		}}

		rr := serve(http.MethodPost, "/v1/auth/login", "/v1/auth/login", `{"email":"a@example.com","password":"password123"}`, nil, h.Login)

		require.Equal(t, http.StatusOK, rr.Code)
		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, mw.AccessTokenCookie, cookies[0].Name)
		assert.Equal(t, "jwt-token", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, 3600, cookies[0].MaxAge)
		assert.Contains(t, rr.Body.String(), "jwt-token")
	})

	t.Run("invalid credentials", func(t *testing.T) {
		h := newTestHandler()
		h.auth = &MockAuthService{LoginFunc: func(ctx context.Context, creds domain.Credentials) (string, error) {
			return "", &internal_errors.ErrorWithStatusCode{Message: "Invalid credentials", StatusCode: http.StatusUnauthorized}
		}}

		rr := serve(http.MethodPost, "/v1/auth/login", "/v1/auth/login", `{"email":"a@example.com","password":"password123"}`, nil, h.Login)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Empty(t, rr.Result().Cookies())
	})
}

func TestLogout(t *testing.T) {
	h := newTestHandler()
	rr := serve(http.MethodPost, "/v1/auth/logout", "/v1/auth/logout", "", ptr(domain.UserId(1)), h.Logout)

	require.Equal(t, http.StatusOK, rr.Code)
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
