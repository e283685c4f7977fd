package backend_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stitchkart/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestLogin(t *testing.T) {
	t.Run("ProfileFromResponseBody", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/auth/login", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "amy@example.com", body["email"])

			w.Write([]byte(`{
				"access_token": "opaque",
				"user": {"id":"u1","name":"Amy","email":"amy@example.com"}
			}`))
		})

		sess, err := c.Login(t.Context(), domain.Credentials{
			Email: "amy@example.com", Password: "hunter2",
		})
		require.NoError(t, err)
		assert.True(t, sess.Authenticated)
		assert.Equal(t, "u1", sess.UserID)
		assert.Equal(t, "Amy", sess.Profile.Name)
	})

	t.Run("ProfileFallsBackToTokenClaims", func(t *testing.T) {
		token := signedTestToken(t, jwt.MapClaims{
			"sub":   "u2",
			"name":  "Bo",
			"email": "bo@example.com",
		})
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{"access_token": token})
		})

		sess, err := c.Login(t.Context(), domain.Credentials{Email: "x", Password: "y"})
		require.NoError(t, err)
		assert.Equal(t, "u2", sess.UserID)
		assert.Equal(t, "Bo", sess.Profile.Name)
		assert.Equal(t, "bo@example.com", sess.Profile.Email)
	})

	t.Run("BadCredentials", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := c.Login(t.Context(), domain.Credentials{Email: "x", Password: "y"})
		require.Error(t, err)
	})
}

func TestExchangeCode(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/auth/callback", r.URL.Path)
		assert.Equal(t, "abc123", r.URL.Query().Get("code"))
		w.Write([]byte(`{
			"access_token": "opaque",
			"user": {"id":"u1","name":"Amy","email":"amy@example.com"}
		}`))
	})

	sess, err := c.ExchangeCode(t.Context(), "abc123")
	require.NoError(t, err)
	assert.True(t, sess.Authenticated)
	assert.Equal(t, "u1", sess.UserID)
}
