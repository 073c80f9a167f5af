package session

import (
	"context"
	"time"
)

// TTL is the fixed session lifetime, measured from last write.
const TTL = 24 * time.Hour

// Session binds an opaque session identifier to an identity record
// reference. It intentionally stores only the reference, never a copy
// of the record.
type Session struct {
	ID        string    // opaque identifier, the cookie value
	UserID    string    // serialized identity reference
	ExpiresAt time.Time // absolute expiry time
}

// Store defines how session records are stored and retrieved.
// Get returns (nil, nil) for a missing or expired record; expiry is
// the backing store's job, not request-time logic.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}
