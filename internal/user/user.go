package user

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned by lookups that match no record.
	ErrNotFound = errors.New("user: not found")

	// ErrUsernameTaken is returned when a create would violate
	// username uniqueness.
	ErrUsernameTaken = errors.New("user: username already taken")

	// ErrDuplicateExternalID is returned when a create would violate
	// the (external_source, external_id) uniqueness constraint.
	ErrDuplicateExternalID = errors.New("user: external identity already linked")
)

// User is an identity record. A record is either local (PasswordHash
// set, no external fields) or external (ExternalSource/ExternalID set,
// no password), never both.
type User struct {
	ID             string
	Username       string
	PasswordHash   string
	ExternalSource string // e.g. "github", "slack"; empty for local records
	ExternalID     string // provider-scoped id, meaningful only with ExternalSource
	Email          string
	Image          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// External reports whether the record was created by an external provider.
func (u *User) External() bool {
	return u.ExternalSource != ""
}

// Store is the identity record store. Create fills ID and the
// lifecycle timestamps on success; lookups return ErrNotFound rather
// than a nil record.
type Store interface {
	Create(ctx context.Context, u *User) error
	ByID(ctx context.Context, id string) (*User, error)
	ByUsername(ctx context.Context, username string) (*User, error)
	ByExternal(ctx context.Context, source, externalID string) (*User, error)
}
