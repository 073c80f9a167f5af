package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"golang.org/x/oauth2"
	githuboauth "golang.org/x/oauth2/github"

	"github.com/mfndnc/lab-authentication-with-passport/internal/auth/provider"
)

const providerName = "github"

// Provider implements OAuth authentication against GitHub. It returns
// profile facts only; no user or session decisions are made here.
type Provider struct {
	oauthConfig *oauth2.Config
	apiBaseURL  string
}

func New(
	clientID string,
	clientSecret string,
	redirectURL string,
) (*Provider, error) {

	if clientID == "" || clientSecret == "" || redirectURL == "" {
		return nil, errors.New("github oauth config missing required fields")
	}

	return &Provider{
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     githuboauth.Endpoint,
			Scopes:       []string{"user:email"},
		},
		apiBaseURL: "https://api.github.com",
	}, nil
}

// Name returns the provider identifier used by the registries.
func (p *Provider) Name() string {
	return providerName
}

// AuthCodeURL builds the GitHub authorization URL.
func (p *Provider) AuthCodeURL(state string) string {
	return p.oauthConfig.AuthCodeURL(state)
}

func (p *Provider) Exchange(ctx context.Context, code string) (*provider.Profile, error) {
	token, err := p.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("github token exchange failed: %w", err)
	}

	client := p.oauthConfig.Client(ctx, token)

	resp, err := client.Get(p.apiBaseURL + "/user")
	if err != nil {
		return nil, fmt.Errorf("github profile fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github profile fetch returned %d", resp.StatusCode)
	}

	var raw struct {
		ID        int64  `json:"id"`
		Login     string `json:"login"`
		AvatarURL string `json:"avatar_url"`
		Email     string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("github profile parse failed: %w", err)
	}

	if raw.ID == 0 {
		return nil, errors.New("github profile missing user id")
	}

	return &provider.Profile{
		ID:       strconv.FormatInt(raw.ID, 10),
		Username: raw.Login,
		Email:    raw.Email,
		Image:    raw.AvatarURL,
	}, nil
}
