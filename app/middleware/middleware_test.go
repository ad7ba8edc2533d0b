package appMiddleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mintToken(t *testing.T, secret, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestInitJWTSecret(t *testing.T) {
	t.Run("fails when the environment variable is unset", func(t *testing.T) {
		t.Setenv("PONDY_JWT_SECRET", "")
		require.Error(t, InitJWTSecret())
	})

	t.Run("loads the secret from the environment", func(t *testing.T) {
		t.Setenv("PONDY_JWT_SECRET", "test-secret")
		require.NoError(t, InitJWTSecret())
	})
}

func TestAuthenticate(t *testing.T) {
	t.Setenv("PONDY_JWT_SECRET", "test-secret")
	require.NoError(t, InitJWTSecret())

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	t.Run("accepts a token signed with the configured secret", func(t *testing.T) {
		gotUserID = ""
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+mintToken(t, "test-secret", "2f6d2a3e-0000-0000-0000-000000000001"))
		rec := httptest.NewRecorder()

		Authenticate(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2f6d2a3e-0000-0000-0000-000000000001", gotUserID)
	})

	t.Run("rejects a token signed with a different key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+mintToken(t, "replace-with-secure-env-var", "u1"))
		rec := httptest.NewRecorder()

		Authenticate(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		Authenticate(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
