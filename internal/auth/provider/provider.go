package provider

import (
	"context"
)

// Profile is the normalized identity a provider returns after a
// successful code exchange. It contains facts only, no decisions.
type Profile struct {
	ID       string // provider-scoped unique user identifier
	Username string // display/login name, may be empty
	Email    string // may be empty; best-effort
	Image    string // avatar URL, may be empty
}

// OAuthProvider defines the contract every external auth provider
// must implement. Implementations return profile facts only and must
// not perform user creation, linking, or session management.
type OAuthProvider interface {
	// Name returns the provider identifier (e.g. "github", "slack").
	Name() string

	// AuthCodeURL returns the provider's OAuth authorization URL with
	// the declared scopes. State is provided by the caller.
	AuthCodeURL(state string) string

	// Exchange exchanges the authorization code for an access token,
	// fetches the user's profile with it, and returns the normalized
	// result. No auth decisions are made here.
	Exchange(ctx context.Context, code string) (*Profile, error)
}
