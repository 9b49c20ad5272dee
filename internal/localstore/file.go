// Package localstore persists session credentials between runs: the
// bearer token and the serialized user profile, each under a fixed
// well-known key. It fills the role browser local storage plays for a
// web client.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/forkful-app/forkful/internal/domain"
	"github.com/forkful-app/forkful/internal/logger"
)

// Well-known keys, matching what the web client kept in local storage.
const (
	keyToken = "token"
	keyUser  = "user"
)

// Compile-time interface check.
var _ domain.CredentialStore = (*FileStore)(nil)

// FileStore keeps credentials in a single JSON file. Safe for
// concurrent use within one process; nothing guards against two
// processes sharing the file.
type FileStore struct {
	mu   sync.Mutex
	path string
	log  *logger.Logger
}

// NewFileStore creates a store backed by <dir>/session.json. The
// directory is created on first write.
func NewFileStore(dir string, log *logger.Logger) *FileStore {
	return &FileStore{
		path: filepath.Join(dir, "session.json"),
		log:  log,
	}
}

// SaveToken persists the bearer token.
func (s *FileStore) SaveToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set(keyToken, token)
}

// LoadToken returns the persisted token, or domain.ErrNotFound when
// none is stored.
func (s *FileStore) LoadToken() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var token string
	if err := s.get(keyToken, &token); err != nil {
		return "", err
	}
	if token == "" {
		return "", domain.ErrNotFound
	}
	return token, nil
}

// SaveUser persists the user profile.
func (s *FileStore) SaveUser(sess *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set(keyUser, sess)
}

// LoadUser returns the persisted profile, or domain.ErrNotFound when
// none is stored. A profile that no longer parses is an error, not a
// missing value; the session layer clears everything in that case.
func (s *FileStore) LoadUser() (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sess domain.Session
	if err := s.get(keyUser, &sess); err != nil {
		return nil, err
	}
	if sess.UserID == "" {
		return nil, fmt.Errorf("localstore: persisted user has no id")
	}
	return &sess, nil
}

// Clear removes all persisted credentials. Succeeds when nothing was
// stored.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("localstore: clear: %w", err)
	}
	s.log.Debug("cleared persisted session")
	return nil
}

// read loads the whole key-value file. A missing file is an empty map.
func (s *FileStore) read() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("localstore: read: %w", err)
	}

	values := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("localstore: parse %s: %w", s.path, err)
	}
	return values, nil
}

// get unmarshals the value under key into out; domain.ErrNotFound when
// the key is absent.
func (s *FileStore) get(key string, out any) error {
	values, err := s.read()
	if err != nil {
		return err
	}
	raw, ok := values[key]
	if !ok {
		return domain.ErrNotFound
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("localstore: parse %s: %w", key, err)
	}
	return nil
}

// set writes the value under key, preserving the other keys.
func (s *FileStore) set(key string, value any) error {
	values, err := s.read()
	if err != nil {
		// A corrupt file should not make login impossible; start over.
		s.log.Warn("resetting credential file: %v", err)
		values = map[string]json.RawMessage{}
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("localstore: marshal %s: %w", key, err)
	}
	values[key] = raw

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("localstore: marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("localstore: mkdir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("localstore: write: %w", err)
	}
	s.log.Debug("saved %s", key)
	return nil
}
