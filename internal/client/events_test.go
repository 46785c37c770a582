package client

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahyog-app/sahyog/internal/model"
)

func TestCreateEvent_MultipartEncoding(t *testing.T) {
	b := newFakeBackend(t)

	var form map[string][]string
	var cover []byte
	b.handleAuthed("POST", "/api/events/create", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		form = r.MultipartForm.Value

		file, _, err := r.FormFile("cover_image")
		require.NoError(t, err)
		cover, err = io.ReadAll(file)
		require.NoError(t, err)

		writeJSON(w, http.StatusCreated, map[string]any{
			"id":     "evt-1",
			"org_id": "org-1",
			"title":  r.FormValue("title"),
		})
	})

	c, store := newTestClient(t, b)
	require.NoError(t, store.Set("tok-valid"))

	start := time.Date(2026, 10, 2, 9, 0, 0, 0, time.UTC)
	event, err := c.CreateEvent(context.Background(), model.CreateEventRequest{
		Title:            "Lake Cleanup Drive",
		City:             "Pune",
		StartTime:        start,
		NeedsVolunteers:  true,
		AcceptsDonations: false,
		CoverImage:       []byte{0x89, 0x50, 0x4e, 0x47},
		CoverImageName:   "cover.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "evt-1", event.ID)

	// Booleans travel as literal strings, both values.
	assert.Equal(t, []string{"true"}, form["needs_volunteers"])
	assert.Equal(t, []string{"false"}, form["accepts_donations"])
	assert.Equal(t, []string{"2026-10-02T09:00:00Z"}, form["start_time"])
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, cover)

	// Empty optional fields are omitted entirely.
	assert.NotContains(t, form, "description")
	assert.NotContains(t, form, "venue")
}

func TestCreateEvent_ValidationFailsBeforeNetwork(t *testing.T) {
	b := newFakeBackend(t)
	c, store := newTestClient(t, b)
	require.NoError(t, store.Set("tok-valid"))

	_, err := c.CreateEvent(context.Background(), model.CreateEventRequest{})
	assert.ErrorIs(t, err, model.ErrValidation)
	assert.Zero(t, b.requestCount())
}

func TestUpdateEvent_OmitsUnsetFields(t *testing.T) {
	b := newFakeBackend(t)

	var form map[string][]string
	b.handleAuthed("PUT", "/api/events/update/{id}", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		form = r.MultipartForm.Value
		writeJSON(w, http.StatusOK, map[string]any{"id": r.PathValue("id")})
	})

	c, store := newTestClient(t, b)
	require.NoError(t, store.Set("tok-valid"))

	title := "Renamed Drive"
	_, err := c.UpdateEvent(context.Background(), "evt-1", model.UpdateEventRequest{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, []string{"Renamed Drive"}, form["title"])
	assert.NotContains(t, form, "needs_volunteers", "an update never rewrites flags it was not given")
	assert.NotContains(t, form, "start_time")
}
