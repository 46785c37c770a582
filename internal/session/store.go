// Package session persists the single opaque bearer token that represents
// an authenticated session.
//
// The store holds at most one token. It performs no validation or parsing
// of the token contents, and every Set or Clear is visible to the next Get
// with no caching layer in between. The store is injected into the client
// layer rather than accessed as package state, so the authenticated call
// path is testable without touching the real token file.
package session

import "sync"

// Store is the token persistence contract. Get returns an empty string
// when no token is stored; that is not an error.
type Store interface {
	Get() (string, error)
	Set(token string) error
	Clear() error
}

// MemStore is an in-memory Store for tests and short-lived sessions.
type MemStore struct {
	mu    sync.Mutex
	token string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Get returns the stored token, or an empty string when none is set.
func (s *MemStore) Get() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

// Set replaces the stored token.
func (s *MemStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

// Clear removes the stored token.
func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
