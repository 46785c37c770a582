package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// tokenFileName is the single fixed key under which the session token is
// persisted.
const tokenFileName = "session.json"

// tokenEnvelope is the on-disk shape: one opaque string, no structured or
// encrypted wrapper.
type tokenEnvelope struct {
	Token string `json:"token"`
}

// FileStore persists the token as a single JSON file. The file is re-read
// on every Get so a concurrent login or logout from another process is
// honored on the next call.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns the standard token location under the user config
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "sahyog", tokenFileName), nil
}

// Get reads the current token. A missing file means no session and
// returns an empty string without error.
func (s *FileStore) Get() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	var env tokenEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return "", err
	}
	return env.Token, nil
}

// Set writes the token, creating the parent directory when needed. The
// file is user-only readable since it carries a live credential.
func (s *FileStore) Set(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	data, err := json.Marshal(tokenEnvelope{Token: token})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Clear removes the token file. Clearing an already-empty store is a
// no-op, not an error.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
