package slack

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newTestProvider(t *testing.T, identityBody string) *Provider {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"xoxp-testtoken","token_type":"bearer"}`))
	})
	mux.HandleFunc("/users.identity", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(identityBody))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	p, err := New("client-id", "client-secret", "http://127.0.0.1:3000/auth/slack/callback")
	require.NoError(t, err)

	p.oauthConfig.Endpoint = oauth2.Endpoint{
		AuthURL:   srv.URL + "/authorize",
		TokenURL:  srv.URL + "/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}
	p.apiBaseURL = srv.URL
	return p
}

func TestExchangeReturnsNormalizedProfile(t *testing.T) {
	p := newTestProvider(t, `{
		"ok": true,
		"user": {
			"id": "U0G9QF9C6",
			"name": "sonny",
			"email": "sonny@example.com",
			"image_192": "https://avatars.example/u192.png"
		}
	}`)

	profile, err := p.Exchange(context.Background(), "some-code")
	require.NoError(t, err)
	assert.Equal(t, "U0G9QF9C6", profile.ID)
	assert.Equal(t, "sonny", profile.Username)
	assert.Equal(t, "sonny@example.com", profile.Email)
	assert.Equal(t, "https://avatars.example/u192.png", profile.Image)
}

func TestExchangeSlackLevelError(t *testing.T) {
	p := newTestProvider(t, `{"ok": false, "error": "invalid_auth"}`)

	_, err := p.Exchange(context.Background(), "some-code")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid_auth")
}

func TestAuthCodeURLCarriesScopes(t *testing.T) {
	p, err := New("client-id", "client-secret", "http://127.0.0.1:3000/auth/slack/callback")
	require.NoError(t, err)

	u := p.AuthCodeURL("the-state")
	assert.Contains(t, u, "state=the-state")
	assert.Contains(t, u, "identity.basic")
}
