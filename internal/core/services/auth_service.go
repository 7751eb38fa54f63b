package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mdfaizanashrafi/sovereon/internal/apperrors"
	"github.com/mdfaizanashrafi/sovereon/internal/core/domain"
	portsrepo "github.com/mdfaizanashrafi/sovereon/internal/core/ports/repositories"
	portssvc "github.com/mdfaizanashrafi/sovereon/internal/core/ports/services"
	"github.com/mdfaizanashrafi/sovereon/internal/dto"
	"github.com/mdfaizanashrafi/sovereon/internal/utils"
)

// authService implements AuthSvcFacade: it orchestrates the password
// hasher, the credential store and the token issuer.
type authService struct {
	userRepo portsrepo.UserRepositoryFacade
	tokens   portssvc.TokenSvcFacade
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, tokens portssvc.TokenSvcFacade) portssvc.AuthSvcFacade {
	return &authService{userRepo: userRepo, tokens: tokens}
}

// Register creates a local account and issues a token pair. Email delivery
// is not integrated, so accounts are created pre-verified.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	if existing, err := s.userRepo.FindUserByEmail(ctx, email); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	} else if existing != nil {
		return nil, apperrors.NewEmailExistsError()
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:        uuid.NewString(),
		Email:         email,
		PasswordHash:  hash,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Role:          domain.RoleUser,
		Status:        "active",
		EmailVerified: true,
		Provider:      domain.ProviderLocal,
		Timestamps:    domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		// A uniqueness violation under a concurrent registration is the
		// same outcome as the pre-check hit.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewEmailExistsError()
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	return s.issuePair(ctx, &user)
}

// Login verifies credentials and issues a token pair. The error for "no
// such user" and "wrong password" is identical in code, message and status
// so the endpoint cannot be used for user enumeration.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewInvalidCredentialsError()
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	// An empty stored hash (OAuth-only account) never verifies.
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.NewInvalidCredentialsError()
	}

	return s.issuePair(ctx, user)
}

// Refresh validates a refresh token and issues a fresh pair.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	user, err := s.tokens.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	return s.issuePair(ctx, user)
}

// LoginWithProvider bridges an external-provider profile to a local
// account. First login creates the account with an empty password hash and
// the provider tag; subsequent logins reuse the account matched by email.
// A profile without an email fails closed: no account, no token.
func (s *authService) LoginWithProvider(ctx context.Context, provider domain.AuthProvider, profile domain.ProviderProfile) (*dto.AuthResponse, error) {
	if profile.Email == "" {
		return nil, apperrors.NewUnauthorizedError("External provider supplied no email")
	}
	email := normalizeEmail(profile.Email)

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user == nil {
		now := time.Now()
		firstName := profile.FirstName
		lastName := profile.LastName
		if firstName == "" && profile.DisplayName != "" {
			firstName, lastName = splitDisplayName(profile.DisplayName)
		}
		created := domain.User{
			UserID:        uuid.NewString(),
			Email:         email,
			PasswordHash:  "", // OAuth accounts have no password
			FirstName:     firstName,
			LastName:      lastName,
			Role:          domain.RoleUser,
			Status:        "active",
			EmailVerified: true,
			Provider:      provider,
			Timestamps:    domain.Timestamps{CreatedAt: now, UpdatedAt: now},
		}
		if err := s.userRepo.SaveUser(ctx, created); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				// Lost a race with another callback for the same email.
				user, err = s.userRepo.FindUserByEmail(ctx, email)
				if err != nil {
					return nil, fmt.Errorf("failed to reload user after duplicate: %w", err)
				}
			} else {
				return nil, fmt.Errorf("failed to create oauth user: %w", err)
			}
		} else {
			user = &created
		}
	}

	return s.issuePair(ctx, user)
}

// issuePair mints the access/refresh pair shared by all flows.
func (s *authService) issuePair(ctx context.Context, user *domain.User) (*dto.AuthResponse, error) {
	accessToken, _, err := s.tokens.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, err
	}
	refreshToken, _, err := s.tokens.GenerateRefreshToken(ctx, user)
	if err != nil {
		return nil, err
	}
	resp := dto.ToAuthResponse(user, accessToken, refreshToken)
	return &resp, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func splitDisplayName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
