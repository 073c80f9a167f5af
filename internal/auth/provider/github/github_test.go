package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if r.FormValue("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"bad_verification_code"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"gho_testtoken","token_type":"bearer"}`))
	})
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer gho_testtoken", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":583231,"login":"octocat","avatar_url":"https://avatars.example/u/583231","email":null}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestProvider(t *testing.T, srv *httptest.Server) *Provider {
	t.Helper()

	p, err := New("client-id", "client-secret", "http://127.0.0.1:3000/auth/github/callback")
	require.NoError(t, err)

	p.oauthConfig.Endpoint = oauth2.Endpoint{
		AuthURL:   srv.URL + "/authorize",
		TokenURL:  srv.URL + "/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}
	p.apiBaseURL = srv.URL
	return p
}

func TestNewRequiresConfig(t *testing.T) {
	_, err := New("", "secret", "url")
	assert.Error(t, err)
	_, err = New("id", "", "url")
	assert.Error(t, err)
	_, err = New("id", "secret", "")
	assert.Error(t, err)
}

func TestAuthCodeURLCarriesState(t *testing.T) {
	p, err := New("client-id", "client-secret", "http://127.0.0.1:3000/auth/github/callback")
	require.NoError(t, err)

	u := p.AuthCodeURL("the-state")
	assert.Contains(t, u, "state=the-state")
	assert.Contains(t, u, "client_id=client-id")
	assert.Contains(t, u, "user%3Aemail")
}

func TestExchangeReturnsNormalizedProfile(t *testing.T) {
	srv := newTestServer(t)
	p := newTestProvider(t, srv)

	profile, err := p.Exchange(context.Background(), "good-code")
	require.NoError(t, err)
	assert.Equal(t, "583231", profile.ID)
	assert.Equal(t, "octocat", profile.Username)
	assert.Equal(t, "https://avatars.example/u/583231", profile.Image)
	assert.Empty(t, profile.Email)
}

func TestExchangeRejectedCode(t *testing.T) {
	srv := newTestServer(t)
	p := newTestProvider(t, srv)

	_, err := p.Exchange(context.Background(), "bad-code")
	assert.Error(t, err)
}
