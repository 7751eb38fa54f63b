package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"

	"github.com/mdfaizanashrafi/sovereon/internal/core/domain"
	portssvc "github.com/mdfaizanashrafi/sovereon/internal/core/ports/services"
	"github.com/mdfaizanashrafi/sovereon/internal/platform/config"
)

// githubProvider implements the OAuthProvider capability for GitHub.
// GitHub has no ID token; the profile comes from the user and user/emails
// REST endpoints called with the exchanged access token.
type githubProvider struct {
	oauth2Config *oauth2.Config
}

// NewGithubProvider creates the GitHub OAuth provider from configuration.
func NewGithubProvider(cfg *config.Config) portssvc.OAuthProvider {
	return &githubProvider{
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GithubClientID,
			ClientSecret: cfg.GithubClientSecret,
			RedirectURL:  cfg.GithubRedirectURL,
			Scopes:       []string{"read:user", "user:email"},
			Endpoint:     github.Endpoint,
		},
	}
}

func (p *githubProvider) Name() domain.AuthProvider {
	return domain.ProviderGithub
}

func (p *githubProvider) AuthCodeURL(state string) string {
	return p.oauth2Config.AuthCodeURL(state)
}

type githubUser struct {
	Login string `json:"login"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type githubEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

// ExchangeCode trades the authorization code for an access token and reads
// the user's profile. Accounts with only private emails are resolved via
// the user/emails endpoint; if no email is reachable the profile comes
// back without one and the bridge fails closed upstream.
func (p *githubProvider) ExchangeCode(ctx context.Context, code string) (*domain.ProviderProfile, error) {
	token, err := p.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}

	client := p.oauth2Config.Client(ctx, token)

	var ghUser githubUser
	if err := getJSON(client, "https://api.github.com/user", &ghUser); err != nil {
		return nil, fmt.Errorf("failed to get user info from github: %w", err)
	}

	email := ghUser.Email
	emailVerified := false
	if email == "" {
		var emails []githubEmail
		if err := getJSON(client, "https://api.github.com/user/emails", &emails); err != nil {
			return nil, fmt.Errorf("failed to get user emails from github: %w", err)
		}
		for _, e := range emails {
			if e.Primary && e.Verified {
				email = e.Email
				emailVerified = true
				break
			}
		}
	}

	displayName := ghUser.Name
	if displayName == "" {
		displayName = ghUser.Login
	}

	return &domain.ProviderProfile{
		Email:         email,
		DisplayName:   displayName,
		EmailVerified: emailVerified,
	}, nil
}

func getJSON(client *http.Client, url string, out any) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("github api returned non-200 status: %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
