package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdfaizanashrafi/sovereon/pkg/client"
)

func envelope(data any) map[string]any {
	return map[string]any{"success": true, "data": data, "timestamp": "2025-01-01T00:00:00Z"}
}

func errorEnvelope(code, message string) map[string]any {
	return map[string]any{
		"success":   false,
		"error":     map[string]string{"code": code, "message": message},
		"timestamp": "2025-01-01T00:00:00Z",
	}
}

func newPortalStub(t *testing.T, validToken string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "password123" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(errorEnvelope("INVALID_CREDENTIALS", "Invalid email or password"))
			return
		}
		json.NewEncoder(w).Encode(envelope(map[string]any{
			"user":  map[string]string{"id": "user-1", "email": body["email"], "role": "user"},
			"token": validToken,
		}))
	})
	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+validToken {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(errorEnvelope("UNAUTHORIZED", "Unauthorized"))
			return
		}
		json.NewEncoder(w).Encode(envelope(map[string]any{
			"id":    "user-1",
			"email": "user@example.com",
			"role":  "user",
		}))
	})
	mux.HandleFunc("POST /api/oauth/logout", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(envelope(map[string]string{"message": "Logged out"}))
	})
	return httptest.NewServer(mux)
}

func TestClient_LoginEstablishesSession(t *testing.T) {
	srv := newPortalStub(t, "good-token")
	defer srv.Close()

	c := client.New(srv.URL)
	ctx := context.Background()

	require.False(t, c.Session().IsAuthenticated)

	user, err := c.Login(ctx, "user@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)

	session := c.Session()
	assert.True(t, session.IsAuthenticated)
	assert.Equal(t, "user@example.com", session.User.Email)
}

func TestClient_LoginFailureIsUnauthorized(t *testing.T) {
	srv := newPortalStub(t, "good-token")
	defer srv.Close()

	c := client.New(srv.URL)
	_, err := c.Login(context.Background(), "user@example.com", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrUnauthorized)
	assert.False(t, c.Session().IsAuthenticated)
}

func TestClient_401ClearsSession(t *testing.T) {
	// The server starts honoring the token, then stops (as if it expired).
	// The first 401 must wipe the stored token and the cached user.
	srv := newPortalStub(t, "good-token")
	defer srv.Close()

	store := client.NewMemoryStore()
	c := client.New(srv.URL, client.WithTokenStore(store))
	ctx := context.Background()

	_, err := c.Login(ctx, "user@example.com", "password123")
	require.NoError(t, err)
	require.True(t, c.Session().IsAuthenticated)

	// Simulate expiry by corrupting the stored token.
	require.NoError(t, store.Save("expired-token"))

	_, err = c.Load(ctx)
	require.ErrorIs(t, err, client.ErrUnauthorized)

	assert.False(t, c.Session().IsAuthenticated)
	_, err = store.Token()
	assert.ErrorIs(t, err, client.ErrNoToken)
}

func TestClient_AuthedCallWithoutTokenIsUnauthorized(t *testing.T) {
	srv := newPortalStub(t, "good-token")
	defer srv.Close()

	c := client.New(srv.URL)
	_, err := c.Load(context.Background())

	assert.ErrorIs(t, err, client.ErrUnauthorized)
}

func TestClient_LogoutDiscardsSession(t *testing.T) {
	srv := newPortalStub(t, "good-token")
	defer srv.Close()

	c := client.New(srv.URL)
	ctx := context.Background()

	_, err := c.Login(ctx, "user@example.com", "password123")
	require.NoError(t, err)

	require.NoError(t, c.Logout(ctx))
	assert.False(t, c.Session().IsAuthenticated)
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")

	first := client.NewFileStore(path)
	require.NoError(t, first.Save("persisted-token"))

	second := client.NewFileStore(path)
	token, err := second.Token()
	require.NoError(t, err)
	assert.Equal(t, "persisted-token", token)

	require.NoError(t, second.Clear())
	_, err = second.Token()
	assert.ErrorIs(t, err, client.ErrNoToken)

	// Clearing twice stays clean.
	require.NoError(t, second.Clear())
}
