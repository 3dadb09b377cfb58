package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapmate/internal/services"
	"mapmate/internal/session"
	"mapmate/pkg/logger"
)

func signToken(t *testing.T, username string, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"username": username,
		"exp":      expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func newTokenStore(t *testing.T) *session.TokenStore {
	t.Helper()
	return session.NewTokenStoreAt(filepath.Join(t.TempDir(), "token"))
}

func TestAuthService_Login(t *testing.T) {
	token := ""
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"` + token + `"}`))
	}))
	defer server.Close()

	token = signToken(t, "ann", time.Now().Add(time.Hour))
	tokens := newTokenStore(t)
	svc := services.NewAuthService(server.URL, server.Client(), tokens, logger.NewNop())

	user, err := svc.Login(context.Background(), "ann", "secret")
	require.NoError(t, err)
	assert.Equal(t, "ann", user.Username)

	// Session populated and token persisted.
	current, ok := svc.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "ann", current.Username)

	stored, err := tokens.Load()
	require.NoError(t, err)
	assert.Equal(t, token, stored)
}

func TestAuthService_LoginFailureUsesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Wrong username or password"}`))
	}))
	defer server.Close()

	svc := services.NewAuthService(server.URL, server.Client(), newTokenStore(t), logger.NewNop())

	_, err := svc.Login(context.Background(), "ann", "wrong-pass")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Wrong username or password")

	_, ok := svc.CurrentUser()
	assert.False(t, ok)
}

func TestAuthService_Register(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/register", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	svc := services.NewAuthService(server.URL, server.Client(), newTokenStore(t), logger.NewNop())

	err := svc.Register(context.Background(), "ann", "secret")
	assert.NoError(t, err)
}

func TestAuthService_RestoreSession(t *testing.T) {
	t.Run("valid stored token restores the user without a round-trip", func(t *testing.T) {
		tokens := newTokenStore(t)
		require.NoError(t, tokens.Save(signToken(t, "ann", time.Now().Add(time.Hour))))

		svc := services.NewAuthService("http://unused", nil, tokens, logger.NewNop())

		user, ok := svc.RestoreSession()
		require.True(t, ok)
		assert.Equal(t, "ann", user.Username)
	})

	t.Run("expired token is cleared and session stays logged out", func(t *testing.T) {
		tokens := newTokenStore(t)
		require.NoError(t, tokens.Save(signToken(t, "ann", time.Now().Add(-time.Hour))))

		svc := services.NewAuthService("http://unused", nil, tokens, logger.NewNop())

		_, ok := svc.RestoreSession()
		assert.False(t, ok)

		stored, err := tokens.Load()
		require.NoError(t, err)
		assert.Empty(t, stored)
	})

	t.Run("malformed token is cleared", func(t *testing.T) {
		tokens := newTokenStore(t)
		require.NoError(t, tokens.Save("not-a-jwt"))

		svc := services.NewAuthService("http://unused", nil, tokens, logger.NewNop())

		_, ok := svc.RestoreSession()
		assert.False(t, ok)

		stored, err := tokens.Load()
		require.NoError(t, err)
		assert.Empty(t, stored)
	})

	t.Run("no stored token", func(t *testing.T) {
		svc := services.NewAuthService("http://unused", nil, newTokenStore(t), logger.NewNop())

		_, ok := svc.RestoreSession()
		assert.False(t, ok)
	})
}

func TestAuthService_Logout(t *testing.T) {
	tokens := newTokenStore(t)
	require.NoError(t, tokens.Save(signToken(t, "ann", time.Now().Add(time.Hour))))

	svc := services.NewAuthService("http://unused", nil, tokens, logger.NewNop())
	_, ok := svc.RestoreSession()
	require.True(t, ok)

	require.NoError(t, svc.Logout())

	_, ok = svc.CurrentUser()
	assert.False(t, ok)

	stored, err := tokens.Load()
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestAuthService_RejectsMalformedCredentialsLocally(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	svc := services.NewAuthService(server.URL, server.Client(), newTokenStore(t), logger.NewNop())

	_, err := svc.Login(context.Background(), "bad user!", "secret")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Username")

	err = svc.Register(context.Background(), "ann", "short")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Password")

	assert.Zero(t, requests, "invalid credentials must not reach the auth service")
}
