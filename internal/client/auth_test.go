package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahyog-app/sahyog/internal/model"
)

func TestLogin_StoresTokenAndReturnsActor(t *testing.T) {
	b := newFakeBackend(t)
	b.handle("POST", "/api/login", http.StatusOK, map[string]any{
		"token": "tok-valid",
		"user":  actorJSON("org", "org-1", "Seva Trust"),
	})

	c, store := newTestClient(t, b)

	actor, err := c.Login(context.Background(), Credentials{Email: "seva@example.org", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, model.ActorOrg, actor.Kind)
	assert.Equal(t, "org-1", actor.ID)

	token, err := store.Get()
	require.NoError(t, err)
	assert.Equal(t, "tok-valid", token)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	b := newFakeBackend(t)
	b.handle("POST", "/api/login", http.StatusUnauthorized, map[string]string{"error": "invalid email or password"})

	c, store := newTestClient(t, b)

	_, err := c.Login(context.Background(), Credentials{Email: "x@example.org", Password: "wrong"})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrAuth)

	token, err := store.Get()
	require.NoError(t, err)
	assert.Empty(t, token, "a failed login must not store a token")
}

func TestLogin_MissingFieldsFailLocally(t *testing.T) {
	b := newFakeBackend(t)
	c, _ := newTestClient(t, b)

	_, err := c.Login(context.Background(), Credentials{Email: "", Password: ""})
	assert.ErrorIs(t, err, model.ErrValidation)
	assert.Zero(t, b.requestCount())
}

func TestVerify_NoTokenNoNetwork(t *testing.T) {
	b := newFakeBackend(t)
	c, _ := newTestClient(t, b)

	actor, err := c.Verify(context.Background())
	require.NoError(t, err)
	assert.Nil(t, actor)
	assert.Zero(t, b.requestCount(), "verify with no token must not issue a request")
}

func TestVerify_ValidToken(t *testing.T) {
	b := newFakeBackend(t)
	b.handleAuthed("GET", "/api/verify", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"user": actorJSON("user", "u-1", "Asha")})
	})

	c, store := newTestClient(t, b)
	require.NoError(t, store.Set("tok-valid"))

	actor, err := c.Verify(context.Background())
	require.NoError(t, err)
	require.NotNil(t, actor)
	assert.Equal(t, model.ActorUser, actor.Kind)
}

func TestVerify_ExpiredTokenResolvesToNil(t *testing.T) {
	b := newFakeBackend(t)
	b.handleAuthed("GET", "/api/verify", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"user": actorJSON("user", "u-1", "Asha")})
	})

	c, store := newTestClient(t, b)
	require.NoError(t, store.Set("tok-stale"))

	// An invalid session is an expected state, not an error.
	actor, err := c.Verify(context.Background())
	require.NoError(t, err)
	assert.Nil(t, actor)
}

func TestVerify_NullUserResolvesToNil(t *testing.T) {
	b := newFakeBackend(t)
	b.handleAuthed("GET", "/api/verify", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"user": nil})
	})

	c, store := newTestClient(t, b)
	require.NoError(t, store.Set("tok-valid"))

	actor, err := c.Verify(context.Background())
	require.NoError(t, err)
	assert.Nil(t, actor)
}

func TestLogout_ClearsStoreWithoutNetwork(t *testing.T) {
	b := newFakeBackend(t)
	c, store := newTestClient(t, b)
	require.NoError(t, store.Set("tok-valid"))

	require.NoError(t, c.Logout())

	token, err := store.Get()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Zero(t, b.requestCount(), "logout is purely client-side")
}
