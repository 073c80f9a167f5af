package linker

import (
	"context"
	"errors"
	"fmt"

	"github.com/mfndnc/lab-authentication-with-passport/internal/auth/provider"
	"github.com/mfndnc/lab-authentication-with-passport/internal/user"
)

// Linker reconciles a third-party profile with a local identity
// record, creating one on first sign-in. It is the ONLY place where
// external-identity-to-record mapping logic lives.
type Linker struct {
	users user.Store
}

func New(users user.Store) *Linker {
	return &Linker{users: users}
}

// Resolve returns the identity record for (source, externalID). An
// existing record is returned as-is, with no profile refresh. A miss
// creates the record from the profile, and a create that loses the
// race against a concurrent first sign-in falls back to the winner's
// record, so the same external principal never maps to two records.
func (l *Linker) Resolve(
	ctx context.Context,
	source string,
	externalID string,
	profile *provider.Profile,
) (*user.User, error) {

	if source == "" || externalID == "" {
		return nil, errors.New("linker: source and external id are required")
	}

	u, err := l.users.ByExternal(ctx, source, externalID)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, user.ErrNotFound) {
		return nil, fmt.Errorf("linker: lookup failed: %w", err)
	}

	nu := &user.User{
		Username:       profile.Username,
		Email:          profile.Email,
		Image:          profile.Image,
		ExternalSource: source,
		ExternalID:     externalID,
	}
	if nu.Username == "" {
		nu.Username = placeholderUsername(source, externalID)
	}

	err = l.users.Create(ctx, nu)
	if errors.Is(err, user.ErrUsernameTaken) {
		// provider display name collides with an existing username;
		// the placeholder is unique per principal
		nu.Username = placeholderUsername(source, externalID)
		err = l.users.Create(ctx, nu)
	}
	if errors.Is(err, user.ErrDuplicateExternalID) {
		return l.users.ByExternal(ctx, source, externalID)
	}
	if err != nil {
		return nil, fmt.Errorf("linker: create failed: %w", err)
	}

	return nu, nil
}

func placeholderUsername(source, externalID string) string {
	return source + "-" + externalID
}
