package services

import (
	"context"
	"fmt"

	portssvc "github.com/mdfaizanashrafi/sovereon/internal/core/ports/services"
	"github.com/mdfaizanashrafi/sovereon/internal/platform/config"
	"github.com/mdfaizanashrafi/sovereon/internal/utils"
)

// oauthService implements OAuthSvcFacade as a registry of configured
// providers. Providers with missing credentials are simply absent, so the
// handlers answer 404 for them.
type oauthService struct {
	providers map[string]portssvc.OAuthProvider
}

// NewOAuthService builds the provider registry from configuration.
func NewOAuthService(cfg *config.Config) portssvc.OAuthSvcFacade {
	providers := make(map[string]portssvc.OAuthProvider)
	if cfg.GoogleClientID != "" && cfg.GoogleClientSecret != "" {
		p := NewGoogleProvider(cfg)
		providers[string(p.Name())] = p
	}
	if cfg.GithubClientID != "" && cfg.GithubClientSecret != "" {
		p := NewGithubProvider(cfg)
		providers[string(p.Name())] = p
	}
	return &oauthService{providers: providers}
}

// Provider returns the named provider, or false if it is not configured.
func (s *oauthService) Provider(name string) (portssvc.OAuthProvider, bool) {
	p, ok := s.providers[name]
	return p, ok
}

// GenerateStateString creates a secure random string used as a CSRF token
// for the redirect handshake. 16 bytes -> 32 char hex string.
func (s *oauthService) GenerateStateString(ctx context.Context) (string, error) {
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate state string for OAuth: %w", err)
	}
	return state, nil
}
