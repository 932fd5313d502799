package client

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// TokenStore persists the session token between runs — the role the browser's
// localStorage plays for the single-page client.
type TokenStore interface {
	Save(token string) error
	// Load returns the stored token, or "" when none is stored.
	Load() (string, error)
	Clear() error
}

// FileTokenStore keeps the token in a file named "token" inside dir.
type FileTokenStore struct {
	path string
}

func NewFileTokenStore(dir string) *FileTokenStore {
	return &FileTokenStore{path: filepath.Join(dir, "token")}
}

func (s *FileTokenStore) Save(token string) error {
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileTokenStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// memoryTokenStore is the fallback when no persistent store is supplied.
type memoryTokenStore struct {
	token string
}

func (s *memoryTokenStore) Save(token string) error { s.token = token; return nil }
func (s *memoryTokenStore) Load() (string, error)   { return s.token, nil }
func (s *memoryTokenStore) Clear() error            { s.token = ""; return nil }
