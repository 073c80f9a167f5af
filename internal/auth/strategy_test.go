package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfndnc/lab-authentication-with-passport/internal/auth/credentials"
	"github.com/mfndnc/lab-authentication-with-passport/internal/auth/linker"
	"github.com/mfndnc/lab-authentication-with-passport/internal/auth/provider"
	"github.com/mfndnc/lab-authentication-with-passport/internal/user"
)

// fakeProvider scripts the code exchange for strategy tests.
type fakeProvider struct {
	name    string
	profile *provider.Profile
	err     error
}

func (f *fakeProvider) Name() string                  { return f.name }
func (f *fakeProvider) AuthCodeURL(state string) string { return "https://example.com/authorize?state=" + state }

func (f *fakeProvider) Exchange(ctx context.Context, code string) (*provider.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

func TestRegistryUnknownStrategy(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Get("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown auth strategy")
}

func TestLocalStrategyOutcomes(t *testing.T) {
	store := user.NewMemoryStore()
	svc := credentials.NewService(store)
	_, err := svc.SignUp(context.Background(), "alice", "longenough1")
	require.NoError(t, err)

	strat := NewLocalStrategy(svc)
	assert.Equal(t, StrategyLocal, strat.Name())

	out := strat.Authenticate(context.Background(), Credentials{Username: "alice", Password: "longenough1"})
	require.True(t, out.Authenticated())
	assert.Equal(t, "alice", out.User.Username)

	out = strat.Authenticate(context.Background(), Credentials{Username: "alice", Password: "wrongpassword"})
	assert.False(t, out.Authenticated())
	assert.Equal(t, WrongCredentials, out.Reason)
	assert.NoError(t, out.Err)

	// nonexistent user resolves to the same failure
	out = strat.Authenticate(context.Background(), Credentials{Username: "nobody", Password: "longenough1"})
	assert.False(t, out.Authenticated())
	assert.Equal(t, WrongCredentials, out.Reason)
}

func TestProviderStrategySuccessLinksIdentity(t *testing.T) {
	store := user.NewMemoryStore()
	strat := NewProviderStrategy(&fakeProvider{
		name:    "github",
		profile: &provider.Profile{ID: "42", Username: "octocat"},
	}, linker.New(store))

	assert.Equal(t, "github", strat.Name())

	out := strat.Authenticate(context.Background(), Credentials{Code: "good-code"})
	require.True(t, out.Authenticated())
	assert.Equal(t, "github", out.User.ExternalSource)
	assert.Equal(t, "42", out.User.ExternalID)

	linked, err := store.ByExternal(context.Background(), "github", "42")
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, linked.ID)
}

func TestProviderStrategyExchangeRejectionIsFailure(t *testing.T) {
	strat := NewProviderStrategy(&fakeProvider{
		name: "github",
		err:  errors.New("bad_verification_code"),
	}, linker.New(user.NewMemoryStore()))

	out := strat.Authenticate(context.Background(), Credentials{Code: "expired"})
	assert.False(t, out.Authenticated())
	assert.NoError(t, out.Err)
	assert.NotEmpty(t, out.Reason)
}

func TestProviderStrategyMissingCodeIsFailure(t *testing.T) {
	strat := NewProviderStrategy(&fakeProvider{name: "github"}, linker.New(user.NewMemoryStore()))

	out := strat.Authenticate(context.Background(), Credentials{})
	assert.False(t, out.Authenticated())
	assert.NoError(t, out.Err)
}
