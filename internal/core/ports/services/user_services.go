package services

import (
	"context"

	"github.com/mdfaizanashrafi/sovereon/internal/core/domain"
	"github.com/mdfaizanashrafi/sovereon/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves a paginated list of users (admin only at the API).
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data.
type UserWriterSvc interface {
	// UpdateProfile applies the mutable profile fields to a user.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)
}

// UserSvcFacade combines user service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
