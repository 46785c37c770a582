package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/sahyog-app/sahyog/internal/session"
)

// fakeBackend is a minimal in-memory stand-in for the Sahyog API used
// across the client tests. Handlers are registered per method+path;
// unknown routes 404.
type fakeBackend struct {
	t   *testing.T
	mux *http.ServeMux
	srv *httptest.Server

	mu       sync.Mutex
	requests []recordedRequest

	// validToken, when non-empty, is the only bearer accepted by authed
	// handlers registered through handleAuthed.
	validToken string
}

type recordedRequest struct {
	Method string
	Path   string
	Header http.Header
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()

	b := &fakeBackend{t: t, mux: http.NewServeMux(), validToken: "tok-valid"}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.requests = append(b.requests, recordedRequest{Method: r.Method, Path: r.URL.Path, Header: r.Header.Clone()})
		b.mu.Unlock()
		b.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *fakeBackend) handle(method, path string, status int, body any) {
	b.mux.HandleFunc(method+" "+path, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, status, body)
	})
}

func (b *fakeBackend) handleFunc(method, path string, fn http.HandlerFunc) {
	b.mux.HandleFunc(method+" "+path, fn)
}

// handleAuthed rejects requests without the valid bearer before running
// fn.
func (b *fakeBackend) handleAuthed(method, path string, fn http.HandlerFunc) {
	b.mux.HandleFunc(method+" "+path, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+b.validToken {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			return
		}
		fn(w, r)
	})
}

func (b *fakeBackend) requestCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.requests)
}

func (b *fakeBackend) lastRequest() recordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.requests) == 0 {
		b.t.Fatal("no requests recorded")
	}
	return b.requests[len(b.requests)-1]
}

// newTestClient wires a client and an in-memory session store against the
// fake backend.
func newTestClient(t *testing.T, b *fakeBackend, opts ...Option) (*Client, *session.MemStore) {
	t.Helper()

	store := session.NewMemStore()
	return New(b.srv.URL, store, opts...), store
}

func readJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// actorJSON builds a minimal backend actor payload.
func actorJSON(kind, id, name string) map[string]any {
	return map[string]any{
		"id":    id,
		"type":  kind,
		"name":  name,
		"email": strings.ToLower(name) + "@example.org",
	}
}
