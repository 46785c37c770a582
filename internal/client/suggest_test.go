package client

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahyog-app/sahyog/internal/model"
)

// deliveries collects suggester output in arrival order.
type deliveries struct {
	mu    sync.Mutex
	items []string
	ch    chan string
}

func newDeliveries() *deliveries {
	return &deliveries{ch: make(chan string, 16)}
}

func (d *deliveries) deliver(query string, _ []model.Suggestion) {
	d.mu.Lock()
	d.items = append(d.items, query)
	d.mu.Unlock()
	d.ch <- query
}

func (d *deliveries) all() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.items...)
}

func (d *deliveries) wait(t *testing.T) string {
	t.Helper()
	select {
	case q := <-d.ch:
		return q
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a suggest delivery")
		return ""
	}
}

func suggestBackend(t *testing.T) *fakeBackend {
	t.Helper()
	b := newFakeBackend(t)
	b.handleFunc("GET", "/api/search/suggest", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		writeJSON(w, http.StatusOK, []map[string]any{
			{"kind": "event", "id": "evt-1", "label": q},
		})
	})
	return b
}

func TestSuggester_DebouncesToFinalInput(t *testing.T) {
	b := suggestBackend(t)
	c, _ := newTestClient(t, b)
	d := newDeliveries()

	s := NewSuggester(c, 30*time.Millisecond, d.deliver)
	ctx := context.Background()

	// Keystrokes inside the window collapse to one request for the last
	// text.
	s.Input(ctx, "c")
	s.Input(ctx, "cl")
	s.Input(ctx, "cle")
	s.Input(ctx, "clean")

	assert.Equal(t, "clean", d.wait(t))
	assert.Equal(t, 1, b.requestCount(), "only the final input may reach the network")
}

func TestSuggester_EmptyInputDeliversImmediately(t *testing.T) {
	b := suggestBackend(t)
	c, _ := newTestClient(t, b)
	d := newDeliveries()

	s := NewSuggester(c, 30*time.Millisecond, d.deliver)
	ctx := context.Background()

	s.Input(ctx, "clean")
	s.Input(ctx, "")

	assert.Equal(t, "", d.wait(t))

	// The cancelled "clean" dispatch must never fire.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, []string{""}, d.all())
	assert.Zero(t, b.requestCount())
}

func TestSuggester_StaleResponseDiscarded(t *testing.T) {
	b := newFakeBackend(t)

	release := make(chan struct{})
	b.handleFunc("GET", "/api/search/suggest", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if q == "slow" {
			<-release // hold the first request until the second resolves
		}
		writeJSON(w, http.StatusOK, []map[string]any{
			{"kind": "event", "id": "evt-1", "label": q},
		})
	})

	c, _ := newTestClient(t, b)
	d := newDeliveries()

	s := NewSuggester(c, 10*time.Millisecond, d.deliver)
	ctx := context.Background()

	s.Input(ctx, "slow")
	// Let the first dispatch fire and block in the handler.
	require.Eventually(t, func() bool { return b.requestCount() == 1 }, time.Second, 5*time.Millisecond)

	s.Input(ctx, "fast")
	assert.Equal(t, "fast", d.wait(t))

	// Release the stale response; it must be dropped on arrival.
	close(release)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, []string{"fast"}, d.all())
}

func TestSuggester_StopOrphansPending(t *testing.T) {
	b := suggestBackend(t)
	c, _ := newTestClient(t, b)
	d := newDeliveries()

	s := NewSuggester(c, 20*time.Millisecond, d.deliver)
	s.Input(context.Background(), "clean")
	s.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, d.all())
}
