package services

import (
	"context"
	"time"

	"github.com/mdfaizanashrafi/sovereon/internal/core/domain"
	"github.com/mdfaizanashrafi/sovereon/internal/dto"
)

// AuthSvcFacade orchestrates the credential flows: hashing, store access
// and token issuance. All paths produce the same response shape so that
// downstream consumers are provider-agnostic.
type AuthSvcFacade interface {
	// Register creates a local account and issues a token pair. A duplicate
	// email, whether detected by pre-check or by the store's uniqueness
	// constraint under a race, yields the same EMAIL_EXISTS outcome.
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)

	// Login verifies credentials and issues a token pair. Unknown email and
	// wrong password are indistinguishable to the caller.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)

	// Refresh validates a refresh token and issues a fresh pair.
	Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error)

	// LoginWithProvider bridges a verified external-provider profile to a
	// local account, creating one with an empty password hash on first
	// login. A profile without an email fails closed.
	LoginWithProvider(ctx context.Context, provider domain.AuthProvider, profile domain.ProviderProfile) (*dto.AuthResponse, error)
}

// TokenSvcFacade mints and validates the application's bearer tokens.
// Access and refresh tokens differ only in TTL.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateRefreshToken verifies a refresh token and resolves its subject.
	ValidateRefreshToken(ctx context.Context, refreshToken string) (*domain.User, error)
}
