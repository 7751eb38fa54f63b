package services

import (
	"context"

	"github.com/mdfaizanashrafi/sovereon/internal/core/domain"
)

// OAuthProvider is the capability an external identity provider must offer:
// build a redirect URL and exchange an authorization code for a profile.
// Implementations wrap a concrete oauth2 endpoint; nothing downstream
// depends on which provider produced the profile.
type OAuthProvider interface {
	// Name returns the provider tag stored on bridged accounts.
	Name() domain.AuthProvider

	// AuthCodeURL builds the URL the user is redirected to, carrying the
	// CSRF state.
	AuthCodeURL(state string) string

	// ExchangeCode trades an authorization code for the provider's profile.
	ExchangeCode(ctx context.Context, code string) (*domain.ProviderProfile, error)
}

// OAuthSvcFacade resolves providers by name and supplies CSRF state strings
// for the redirect handshake.
type OAuthSvcFacade interface {
	// Provider returns the named provider, or false if it is not configured.
	Provider(name string) (OAuthProvider, bool)

	// GenerateStateString creates a secure random CSRF token for the flow.
	GenerateStateString(ctx context.Context) (string, error)
}
