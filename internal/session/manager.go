package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mfndnc/lab-authentication-with-passport/internal/user"
)

// Manager creates, destroys, and restores sessions. A session holds
// only an identity reference; every restore re-resolves it against
// the identity record store, and a dangling reference degrades to
// "no authenticated identity" rather than an error.
type Manager struct {
	store Store
	users user.Store
	ttl   time.Duration
}

func NewManager(store Store, users user.Store, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = TTL
	}
	return &Manager{
		store: store,
		users: users,
		ttl:   ttl,
	}
}

// Serialize produces the minimal durable reference stored in the
// session record.
func (m *Manager) Serialize(u *user.User) string {
	return u.ID
}

// Deserialize resolves a stored reference back into an identity
// record. A reference that no longer resolves returns (nil, nil).
func (m *Manager) Deserialize(ctx context.Context, ref string) (*user.User, error) {
	u, err := m.users.ByID(ctx, ref)
	if errors.Is(err, user.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session: deserialize failed: %w", err)
	}
	return u, nil
}

// Start creates a new session bound to the identity and returns it.
// Callers must only invoke this after authentication has fully
// resolved the identity.
func (m *Manager) Start(ctx context.Context, u *user.User) (Session, error) {
	id, err := GenerateID()
	if err != nil {
		return Session{}, err
	}

	s := Session{
		ID:        id,
		UserID:    m.Serialize(u),
		ExpiresAt: time.Now().Add(m.ttl),
	}
	if err := m.store.Create(ctx, s); err != nil {
		return Session{}, fmt.Errorf("session: failed to persist: %w", err)
	}
	return s, nil
}

// End destroys the session. Ending an unknown session is a no-op.
func (m *Manager) End(ctx context.Context, sessionID string) error {
	return m.store.Delete(ctx, sessionID)
}

// Resolve restores the authenticated identity for a session id.
// Missing, expired, or dangling sessions resolve to (nil, nil);
// only store failures return an error.
func (m *Manager) Resolve(ctx context.Context, sessionID string) (*user.User, error) {
	if sessionID == "" {
		return nil, nil
	}

	s, err := m.store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("session: lookup failed: %w", err)
	}
	if s == nil {
		return nil, nil
	}

	// Redis drops expired keys on its own; this guards stores that
	// keep the record around.
	if time.Now().After(s.ExpiresAt) {
		_ = m.store.Delete(ctx, sessionID)
		return nil, nil
	}

	return m.Deserialize(ctx, s.UserID)
}
