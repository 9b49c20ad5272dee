package localstore

import (
	"sync"

	"github.com/forkful-app/forkful/internal/domain"
)

// Compile-time interface check.
var _ domain.CredentialStore = (*MemoryStore)(nil)

// MemoryStore is an in-memory credential store for tests.
type MemoryStore struct {
	mu    sync.Mutex
	token string
	user  *domain.Session
}

// NewMemoryStore creates an empty in-memory credential store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SaveToken stores the token.
func (s *MemoryStore) SaveToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

// LoadToken returns the stored token, or domain.ErrNotFound.
func (s *MemoryStore) LoadToken() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return "", domain.ErrNotFound
	}
	return s.token, nil
}

// SaveUser stores the user profile.
func (s *MemoryStore) SaveUser(sess *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *sess
	s.user = &copied
	return nil
}

// LoadUser returns the stored profile, or domain.ErrNotFound.
func (s *MemoryStore) LoadUser() (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, domain.ErrNotFound
	}
	copied := *s.user
	return &copied, nil
}

// Clear removes token and profile.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	return nil
}
