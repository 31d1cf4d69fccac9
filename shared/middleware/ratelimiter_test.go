package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/middleware/ratelimiter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("allows request within rate limit", func(t *testing.T) {
		rl := ratelimiter.New(1, 1, time.Minute)
		defer rl.Stop()
		handler := RateLimit(rl, func(r *http.Request) (string, error) { return "user1", nil })(okHandler())

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("error getting identity", func(t *testing.T) {
		rl := ratelimiter.New(1, 1, time.Minute)
		defer rl.Stop()
		handler := RateLimit(rl, func(r *http.Request) (string, error) { return "", errors.New("Test error") })(okHandler())

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("blocks request exceeding rate limit", func(t *testing.T) {
		rl := ratelimiter.New(1, 1, time.Minute)
		defer rl.Stop()
		handler := RateLimit(rl, func(r *http.Request) (string, error) { return "user1", nil })(okHandler())

		w1 := httptest.NewRecorder()
		handler.ServeHTTP(w1, httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, http.StatusOK, w1.Code)

		w2 := httptest.NewRecorder()
		handler.ServeHTTP(w2, httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, http.StatusTooManyRequests, w2.Code)
		assert.Equal(t, "Rate limit exceeded, try again later\n", w2.Body.String())
	})

	t.Run("uses identity function to determine user", func(t *testing.T) {
		rl := ratelimiter.New(1, 1, time.Minute)
		defer rl.Stop()
		handler := RateLimit(rl, func(r *http.Request) (string, error) { return r.Header.Get("X-User-ID"), nil })(okHandler())

		send := func(id string) int {
			req := httptest.NewRequest("GET", "/", nil)
			req.Header.Set("X-User-ID", id)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			return w.Code
		}

		assert.Equal(t, http.StatusOK, send("user1"))
		assert.Equal(t, http.StatusOK, send("user2"))
		assert.Equal(t, http.StatusTooManyRequests, send("user1"))
	})
}

func TestGetUserIdentity(t *testing.T) {
	t.Run("returns user id when user exists in context", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req = req.WithContext(WithUserId(req.Context(), domain.UserId(123)))

		id, err := GetUserIdentity(req)
		require.NoError(t, err)
		assert.Equal(t, "user_123", id)
	})

	t.Run("returns unauthorized when user not in context", func(t *testing.T) {
		id, err := GetUserIdentity(httptest.NewRequest("GET", "/", nil))
		require.Error(t, err)
		assert.Empty(t, id)
		assert.Equal(t, "Please sign-in", err.Error())
	})
}

func TestGetIP(t *testing.T) {
	t.Run("returns IP from request", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"

		ip, err := GetIP(req)
		assert.NoError(t, err)
		assert.Equal(t, "192.168.1.1", ip)
	})

	t.Run("returns error when RemoteAddr is invalid", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = ""

		_, err := GetIP(req)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid IP address")
	})
}
