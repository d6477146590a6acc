package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paperplay-backend/infrastructure/config"
	"paperplay-backend/pkg/auth"
)

type stubLimiter struct {
	allow bool
	keys  []string
}

func (s *stubLimiter) Allow(_ context.Context, key string) (bool, error) {
	s.keys = append(s.keys, key)
	return s.allow, nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		JWTIssuer: "paperplay-backend",
	}
}

func issueToken(t *testing.T, mutate func(*auth.Claims)) string {
	t.Helper()
	claims := auth.Claims{
		UserID: "user-1",
		Email:  "user@example.com",
		Roles:  []string{"authenticated"},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "paperplay-backend",
			Audience:  jwt.ClaimStrings{"paperplay-api"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	if mutate != nil {
		mutate(&claims)
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func userCapturingHandler(captured **auth.UserContext) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, err := auth.GetUserFromContext(r.Context()); err == nil {
			*captured = user
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate(t *testing.T) {
	t.Run("valid token sets user in context", func(t *testing.T) {
		var captured *auth.UserContext
		handler := Authenticate(testConfig(), &stubLimiter{allow: true}, &stubLimiter{allow: true})(userCapturingHandler(&captured))

		req := httptest.NewRequest(http.MethodGet, "/api/papers", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, nil))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, captured)
		assert.Equal(t, "user-1", captured.UserID)
		assert.Equal(t, "user@example.com", captured.Email)
		assert.Equal(t, []string{"authenticated"}, captured.Roles)
	})

	t.Run("missing authorization header", func(t *testing.T) {
		handler := Authenticate(testConfig(), &stubLimiter{allow: true}, &stubLimiter{allow: true})(userCapturingHandler(new(*auth.UserContext)))

		req := httptest.NewRequest(http.MethodGet, "/api/papers", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Missing authorization header")
	})

	t.Run("malformed authorization header", func(t *testing.T) {
		handler := Authenticate(testConfig(), &stubLimiter{allow: true}, &stubLimiter{allow: true})(userCapturingHandler(new(*auth.UserContext)))

		req := httptest.NewRequest(http.MethodGet, "/api/papers", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid authorization header format")
	})

	t.Run("expired token", func(t *testing.T) {
		handler := Authenticate(testConfig(), &stubLimiter{allow: true}, &stubLimiter{allow: true})(userCapturingHandler(new(*auth.UserContext)))

		token := issueToken(t, func(c *auth.Claims) {
			c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
		})
		req := httptest.NewRequest(http.MethodGet, "/api/papers", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Token has expired")
	})

	t.Run("ip rate limit exceeded", func(t *testing.T) {
		ipLimiter := &stubLimiter{allow: false}
		handler := Authenticate(testConfig(), ipLimiter, &stubLimiter{allow: true})(userCapturingHandler(new(*auth.UserContext)))

		req := httptest.NewRequest(http.MethodGet, "/api/papers", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		req.Header.Set("Authorization", "Bearer "+issueToken(t, nil))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, []string{"203.0.113.7"}, ipLimiter.keys)
	})

	t.Run("user rate limit exceeded after validation", func(t *testing.T) {
		userLimiter := &stubLimiter{allow: false}
		handler := Authenticate(testConfig(), &stubLimiter{allow: true}, userLimiter)(userCapturingHandler(new(*auth.UserContext)))

		req := httptest.NewRequest(http.MethodGet, "/api/papers", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, nil))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Contains(t, rec.Body.String(), "User rate limit exceeded")
		assert.Equal(t, []string{"user-1"}, userLimiter.keys)
	})

	t.Run("lambda config routes to header auth", func(t *testing.T) {
		cfg := testConfig()
		cfg.IsLambda = true
		var captured *auth.UserContext
		handler := Authenticate(cfg, &stubLimiter{allow: true}, &stubLimiter{allow: true})(userCapturingHandler(&captured))

		req := httptest.NewRequest(http.MethodGet, "/api/papers", nil)
		req.Header.Set("X-API-Gateway-Authorized", "true")
		req.Header.Set("X-User-ID", "user-9")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, captured)
		assert.Equal(t, "user-9", captured.UserID)
	})
}

func TestAuthenticateForLambda(t *testing.T) {
	t.Run("trusted headers populate user context", func(t *testing.T) {
		var captured *auth.UserContext
		handler := AuthenticateForLambda(&stubLimiter{allow: true}, &stubLimiter{allow: true})(userCapturingHandler(&captured))

		req := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
		req.Header.Set("X-API-Gateway-Authorized", "true")
		req.Header.Set("X-User-ID", "user-2")
		req.Header.Set("X-User-Email", "two@example.com")
		req.Header.Set("X-User-Roles", "authenticated,admin")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, captured)
		assert.Equal(t, "user-2", captured.UserID)
		assert.Equal(t, "two@example.com", captured.Email)
		assert.Equal(t, []string{"authenticated", "admin"}, captured.Roles)
	})

	t.Run("defaults roles when header absent", func(t *testing.T) {
		var captured *auth.UserContext
		handler := AuthenticateForLambda(&stubLimiter{allow: true}, &stubLimiter{allow: true})(userCapturingHandler(&captured))

		req := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
		req.Header.Set("X-API-Gateway-Authorized", "true")
		req.Header.Set("X-User-ID", "user-3")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.NotNil(t, captured)
		assert.Equal(t, []string{"authenticated"}, captured.Roles)
	})

	t.Run("missing gateway authorization", func(t *testing.T) {
		handler := AuthenticateForLambda(&stubLimiter{allow: true}, &stubLimiter{allow: true})(userCapturingHandler(new(*auth.UserContext)))

		req := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
		req.Header.Set("X-User-ID", "user-4")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Missing API Gateway authorization")
	})

	t.Run("missing user id", func(t *testing.T) {
		handler := AuthenticateForLambda(&stubLimiter{allow: true}, &stubLimiter{allow: true})(userCapturingHandler(new(*auth.UserContext)))

		req := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
		req.Header.Set("X-API-Gateway-Authorized", "true")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Missing user context from API Gateway")
	})
}
