package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/itchan-dev/forum/shared/domain"
	jwt_internal "github.com/itchan-dev/forum/shared/jwt"
	"github.com/itchan-dev/forum/shared/utils"
)

type key int

const userIdKey key = 0

const AccessTokenCookie = "accessToken"

var errNoToken = errors.New("no token")

type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedAuth rejects requests without a valid token.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userId, err := a.extractUserId(r)
			if err != nil {
				if errors.Is(err, errNoToken) {
					http.Error(w, "Please sign-in", http.StatusUnauthorized)
					return
				}
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserId(r.Context(), userId)))
		})
	}
}

// OptionalAuth populates the user id when the token is valid and lets everyone through.
func (a *Auth) OptionalAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userId, err := a.extractUserId(r); err == nil {
				r = r.WithContext(WithUserId(r.Context(), userId))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// cookie first (browsers), then Authorization header (api clients)
func (a *Auth) extractUserId(r *http.Request) (domain.UserId, error) {
	var tokenString string
	if cookie, err := r.Cookie(AccessTokenCookie); err == nil {
		tokenString = cookie.Value
	} else if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		tokenString = token
	}
	if tokenString == "" {
		return 0, errNoToken
	}

	claims, err := a.jwtService.DecodeToken(tokenString)
	if err != nil {
		return 0, err
	}
	return claims.UserId, nil
}

func WithUserId(ctx context.Context, userId domain.UserId) context.Context {
	return context.WithValue(ctx, userIdKey, userId)
}

// GetUserIdFromContext returns nil for anonymous requests.
func GetUserIdFromContext(r *http.Request) *domain.UserId {
	userId, ok := r.Context().Value(userIdKey).(domain.UserId)
	if !ok {
		return nil
	}
	return &userId
}
