package user

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store with the same uniqueness contract
// as the Postgres store. Used by tests and local experiments.
type MemoryStore struct {
	mu         sync.Mutex
	byID       map[string]*User
	byUsername map[string]string // lower(username) -> id
	byExternal map[string]string // source + "\x00" + externalID -> id
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:       make(map[string]*User),
		byUsername: make(map[string]string),
		byExternal: make(map[string]string),
	}
}

func externalKey(source, externalID string) string {
	return source + "\x00" + externalID
}

func (s *MemoryStore) Create(ctx context.Context, u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.Username != "" {
		if _, ok := s.byUsername[strings.ToLower(u.Username)]; ok {
			return ErrUsernameTaken
		}
	}
	if u.ExternalSource != "" {
		if _, ok := s.byExternal[externalKey(u.ExternalSource, u.ExternalID)]; ok {
			return ErrDuplicateExternalID
		}
	}

	now := time.Now()
	u.ID = uuid.New().String()
	u.CreatedAt = now
	u.UpdatedAt = now

	cp := *u
	s.byID[u.ID] = &cp
	if u.Username != "" {
		s.byUsername[strings.ToLower(u.Username)] = u.ID
	}
	if u.ExternalSource != "" {
		s.byExternal[externalKey(u.ExternalSource, u.ExternalID)] = u.ID
	}
	return nil
}

func (s *MemoryStore) ByID(ctx context.Context, id string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(id)
}

func (s *MemoryStore) ByUsername(ctx context.Context, username string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byUsername[strings.ToLower(username)]
	if !ok {
		return nil, ErrNotFound
	}
	return s.get(id)
}

func (s *MemoryStore) ByExternal(ctx context.Context, source, externalID string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byExternal[externalKey(source, externalID)]
	if !ok {
		return nil, ErrNotFound
	}
	return s.get(id)
}

// Delete removes a record. Only tests use this, to simulate a session
// whose identity reference has gone dangling.
func (s *MemoryStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return
	}
	delete(s.byID, id)
	if u.Username != "" {
		delete(s.byUsername, strings.ToLower(u.Username))
	}
	if u.ExternalSource != "" {
		delete(s.byExternal, externalKey(u.ExternalSource, u.ExternalID))
	}
}

func (s *MemoryStore) get(id string) (*User, error) {
	u, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}
