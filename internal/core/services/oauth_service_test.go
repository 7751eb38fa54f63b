package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mdfaizanashrafi/sovereon/internal/core/services"
	"github.com/mdfaizanashrafi/sovereon/internal/platform/config"
)

type OAuthServiceTestSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *OAuthServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *OAuthServiceTestSuite) TestProvider_OnlyConfiguredProvidersRegistered() {
	cfg := &config.Config{
		GoogleClientID:     "google-client-id",
		GoogleClientSecret: "google-client-secret",
		GoogleRedirectURL:  "http://localhost:8080/api/oauth/google/callback",
		// Github credentials intentionally missing.
	}
	svc := services.NewOAuthService(cfg)

	google, ok := svc.Provider("google")
	s.Require().True(ok)
	s.Equal("google", string(google.Name()))

	_, ok = svc.Provider("github")
	s.False(ok)

	_, ok = svc.Provider("facebook")
	s.False(ok)
}

func (s *OAuthServiceTestSuite) TestProvider_EmptyConfigRegistersNothing() {
	svc := services.NewOAuthService(&config.Config{})

	_, ok := svc.Provider("google")
	s.False(ok)
	_, ok = svc.Provider("github")
	s.False(ok)
}

func (s *OAuthServiceTestSuite) TestAuthCodeURL_CarriesState() {
	cfg := &config.Config{
		GithubClientID:     "github-client-id",
		GithubClientSecret: "github-client-secret",
		GithubRedirectURL:  "http://localhost:8080/api/oauth/github/callback",
	}
	svc := services.NewOAuthService(cfg)

	github, ok := svc.Provider("github")
	s.Require().True(ok)

	url := github.AuthCodeURL("state-token-123")
	s.True(strings.Contains(url, "state=state-token-123"))
	s.True(strings.Contains(url, "client_id=github-client-id"))
}

func (s *OAuthServiceTestSuite) TestGenerateStateString() {
	svc := services.NewOAuthService(&config.Config{})

	first, err := svc.GenerateStateString(s.ctx)
	s.Require().NoError(err)
	s.Len(first, 32)

	second, err := svc.GenerateStateString(s.ctx)
	s.Require().NoError(err)
	s.NotEqual(first, second)
}

func TestOAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OAuthServiceTestSuite))
}
