package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/mdfaizanashrafi/sovereon/internal/core/domain"
	portssvc "github.com/mdfaizanashrafi/sovereon/internal/core/ports/services"
	"github.com/mdfaizanashrafi/sovereon/internal/platform/config"
)

// googleProvider implements the OAuthProvider capability for Google.
// The code exchange yields an ID token whose signature and audience are
// validated before any claim is trusted.
type googleProvider struct {
	clientID     string
	oauth2Config *oauth2.Config
}

// NewGoogleProvider creates the Google OAuth provider from configuration.
func NewGoogleProvider(cfg *config.Config) portssvc.OAuthProvider {
	return &googleProvider{
		clientID: cfg.GoogleClientID,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

func (p *googleProvider) Name() domain.AuthProvider {
	return domain.ProviderGoogle
}

func (p *googleProvider) AuthCodeURL(state string) string {
	return p.oauth2Config.AuthCodeURL(state)
}

// ExchangeCode trades the authorization code for Google tokens, validates
// the embedded ID token and extracts the profile claims.
func (p *googleProvider) ExchangeCode(ctx context.Context, code string) (*domain.ProviderProfile, error) {
	token, err := p.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}

	idTokenString, ok := token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		return nil, errors.New("id token missing from google token response")
	}

	payload, err := idtoken.Validate(ctx, idTokenString, p.clientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	givenName, _ := payload.Claims["given_name"].(string)
	familyName, _ := payload.Claims["family_name"].(string)
	emailVerified, _ := payload.Claims["email_verified"].(bool)

	return &domain.ProviderProfile{
		Email:         email,
		DisplayName:   name,
		FirstName:     givenName,
		LastName:      familyName,
		EmailVerified: emailVerified,
	}, nil
}
