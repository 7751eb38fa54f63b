package dto

import "github.com/mdfaizanashrafi/sovereon/internal/core/domain"

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"omitempty,max=100"`
	LastName  string `json:"lastName" binding:"omitempty,max=100"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest is the body of POST /api/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// AuthUser is the reduced user shape returned by the auth endpoints.
// It never carries a password hash.
type AuthUser struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// AuthResponse is the payload of successful register/login/refresh calls.
type AuthResponse struct {
	User         AuthUser `json:"user"`
	Token        string   `json:"token"`
	RefreshToken string   `json:"refreshToken"`
}

// ToAuthResponse builds the wire payload from a user and token pair.
func ToAuthResponse(user *domain.User, token, refreshToken string) AuthResponse {
	return AuthResponse{
		User: AuthUser{
			UserID: user.UserID,
			Email:  user.Email,
			Role:   string(user.Role),
		},
		Token:        token,
		RefreshToken: refreshToken,
	}
}
