package client

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahyog-app/sahyog/internal/model"
)

func TestCall_AttachesBearerFreshPerCall(t *testing.T) {
	b := newFakeBackend(t)
	b.handleFunc("GET", "/api/notifications", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []any{})
	})

	c, store := newTestClient(t, b)
	require.NoError(t, store.Set("tok-one"))

	_, err := c.ListNotifications(context.Background(), false, model.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-one", b.lastRequest().Header.Get("Authorization"))

	// A token swap between calls must be reflected on the very next
	// request.
	require.NoError(t, store.Set("tok-two"))
	_, err = c.ListNotifications(context.Background(), false, model.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-two", b.lastRequest().Header.Get("Authorization"))
}

func TestCall_AfterClearRejectsLocally(t *testing.T) {
	b := newFakeBackend(t)
	b.handle("GET", "/api/notifications", http.StatusOK, []any{})

	c, store := newTestClient(t, b)
	require.NoError(t, store.Set("tok-one"))
	_, err := c.ListNotifications(context.Background(), false, model.ListOptions{})
	require.NoError(t, err)

	before := b.requestCount()
	require.NoError(t, store.Clear())

	_, err = c.ListNotifications(context.Background(), false, model.ListOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnauthorized)
	assert.Equal(t, before, b.requestCount(), "cleared session must not reach the network")
}

func TestCall_SendsIdempotencyKeyOnMutations(t *testing.T) {
	b := newFakeBackend(t)
	b.handle("POST", "/api/follow", http.StatusOK, nil)
	b.handle("GET", "/api/events", http.StatusOK, []any{})

	c, store := newTestClient(t, b)
	require.NoError(t, store.Set("tok-valid"))

	require.NoError(t, c.FollowOrg(context.Background(), "org-1"))
	assert.NotEmpty(t, b.lastRequest().Header.Get("Idempotency-Key"))

	_, err := c.ListEvents(context.Background(), model.EventFilter{}, model.ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, b.lastRequest().Header.Get("Idempotency-Key"), "GETs carry no idempotency key")
}

func TestCall_ErrorNormalization(t *testing.T) {
	b := newFakeBackend(t)
	b.handle("GET", "/api/events/missing", http.StatusNotFound, map[string]string{"error": "event not found"})
	b.handle("GET", "/api/events/forbidden", http.StatusForbidden, map[string]string{"error": "not yours"})
	b.handle("GET", "/api/events/broken", http.StatusInternalServerError, map[string]string{"message": "boom"})

	c, store := newTestClient(t, b)
	require.NoError(t, store.Set("tok-valid"))

	_, err := c.GetEvent(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)

	var apiErr *model.APIError
	_, err = c.GetEvent(context.Background(), "forbidden")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, model.KindUnauthorized, apiErr.Kind)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "not yours", apiErr.Message)

	_, err = c.GetEvent(context.Background(), "broken")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, model.KindServer, apiErr.Kind)
	assert.Equal(t, "boom", apiErr.Message)
}

func TestCall_MalformedPayloadIsServerError(t *testing.T) {
	b := newFakeBackend(t)
	b.handleFunc("GET", "/api/events/garbled", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("not json"))
	})

	c, _ := newTestClient(t, b)

	_, err := c.GetEvent(context.Background(), "garbled")
	assert.ErrorIs(t, err, model.ErrServer)
}

func TestCall_TransportFailureIsNetworkError(t *testing.T) {
	b := newFakeBackend(t)
	c, _ := newTestClient(t, b)
	// Point the client at a closed port.
	c.baseURL = "http://127.0.0.1:1"

	_, err := c.GetEvent(context.Background(), "evt-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrNetwork)

	var apiErr *model.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Zero(t, apiErr.Status)
}

func TestListQuery_OmitsZeroValues(t *testing.T) {
	b := newFakeBackend(t)
	b.handleFunc("GET", "/api/events", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "Pune", q.Get("city"))
		assert.False(t, q.Has("category"), "empty filters must be omitted")
		assert.False(t, q.Has("page"), "zero page must be omitted")
		assert.Equal(t, "20", q.Get("limit"))
		writeJSON(w, http.StatusOK, []any{})
	})

	c, _ := newTestClient(t, b)
	_, err := c.ListEvents(context.Background(), model.EventFilter{City: "Pune"}, model.ListOptions{Limit: 20})
	require.NoError(t, err)
}
