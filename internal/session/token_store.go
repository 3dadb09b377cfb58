package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// tokenFileName is the fixed key the auth token is stored under, the
// durable client-side storage analog of the browser's localStorage entry.
const tokenFileName = "token"

// TokenStore persists the auth token across sessions in the user config
// directory. Load returns an empty string when no token is stored.
type TokenStore struct {
	mu   sync.Mutex
	path string
}

func NewTokenStore(appName string) (*TokenStore, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config dir: %w", err)
	}
	return NewTokenStoreAt(filepath.Join(dir, appName, tokenFileName)), nil
}

// NewTokenStoreAt uses an explicit file path. Tests point it at a temp dir.
func NewTokenStoreAt(path string) *TokenStore {
	return &TokenStore{path: path}
}

func (s *TokenStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *TokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create token dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to write token: %w", err)
	}
	return nil
}

func (s *TokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}
