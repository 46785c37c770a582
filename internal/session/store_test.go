package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStore_RoundTrip(t *testing.T) {
	s := NewMemStore()

	token, err := s.Get()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, s.Set("tok-1"))
	token, err = s.Get()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	require.NoError(t, s.Clear())
	token, err = s.Get()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	s := NewFileStore(path)

	// Missing file is an empty session, not an error.
	token, err := s.Get()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, s.Set("tok-1"))
	token, err = s.Get()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	require.NoError(t, s.Clear())
	token, err = s.Get()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestFileStore_SetOverwrites(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "session.json"))

	require.NoError(t, s.Set("tok-old"))
	require.NoError(t, s.Set("tok-new"))

	token, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, "tok-new", token)
}

func TestFileStore_ClearIsIdempotent(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "session.json"))

	require.NoError(t, s.Clear())
	require.NoError(t, s.Set("tok-1"))
	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())
}

func TestFileStore_TokenFileIsUserOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := NewFileStore(path)
	require.NoError(t, s.Set("tok-1"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_SeesExternalChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := NewFileStore(path)
	require.NoError(t, s.Set("tok-1"))

	// Another process rewrites the file; the next Get must see it.
	require.NoError(t, os.WriteFile(path, []byte(`{"token":"tok-2"}`), 0o600))

	token, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)
}
