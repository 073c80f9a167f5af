package slack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"

	"github.com/mfndnc/lab-authentication-with-passport/internal/auth/provider"
)

const providerName = "slack"

// Provider implements OAuth authentication against Slack using the
// identity scopes. It returns profile facts only.
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
		return nil, errors.New("slack oauth config missing required fields")
	}

	return &Provider{
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     endpoints.Slack,
			Scopes: []string{
				"identity.basic",
				"identity.email",
				"identity.avatar",
			},
		},
		apiBaseURL: "https://slack.com/api",
	}, nil
}

// Name returns the provider identifier used by the registries.
func (p *Provider) Name() string {
	return providerName
}

// AuthCodeURL builds the Slack authorization URL.
func (p *Provider) AuthCodeURL(state string) string {
	return p.oauthConfig.AuthCodeURL(state)
}

func (p *Provider) Exchange(ctx context.Context, code string) (*provider.Profile, error) {
	token, err := p.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("slack token exchange failed: %w", err)
	}

	client := p.oauthConfig.Client(ctx, token)

	resp, err := client.Get(p.apiBaseURL + "/users.identity")
	if err != nil {
		return nil, fmt.Errorf("slack identity fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("slack identity fetch returned %d", resp.StatusCode)
	}

	var raw struct {
		OK    bool   `json:"ok"`
		Error string `json:"error"`
		User  struct {
			ID       string `json:"id"`
			Name     string `json:"name"`
			Email    string `json:"email"`
			Image192 string `json:"image_192"`
		} `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("slack identity parse failed: %w", err)
	}

	if !raw.OK {
		return nil, fmt.Errorf("slack identity fetch failed: %s", raw.Error)
	}
	if raw.User.ID == "" {
		return nil, errors.New("slack identity missing user id")
	}

	return &provider.Profile{
		ID:       raw.User.ID,
		Username: raw.User.Name,
		Email:    raw.User.Email,
		Image:    raw.User.Image192,
	}, nil
}
