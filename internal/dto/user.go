package dto

import (
	"time"

	"github.com/mdfaizanashrafi/sovereon/internal/core/domain"
)

// UpdateProfileRequest defines the mutable profile fields of PUT /api/auth/me.
// Pointers differentiate omitted fields from zero values.
type UpdateProfileRequest struct {
	FirstName   *string `json:"firstName" binding:"omitempty,max=100"`
	LastName    *string `json:"lastName" binding:"omitempty,max=100"`
	CompanyName *string `json:"companyName" binding:"omitempty,max=200"`
	Phone       *string `json:"phone" binding:"omitempty,max=30"`
}

// UserResponse is the full profile shape returned by /api/auth/me and the
// admin user listing. The password hash is structurally absent.
type UserResponse struct {
	UserID      string    `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	CompanyName string    `json:"companyName,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
	Provider    string    `json:"provider"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its wire shape.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:      user.UserID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		CompanyName: user.CompanyName,
		Phone:       user.Phone,
		Role:        string(user.Role),
		Status:      user.Status,
		Provider:    string(user.Provider),
		CreatedAt:   user.CreatedAt,
	}
}

// ToListUserResponse converts a slice of domain users for the admin listing.
func ToListUserResponse(users []domain.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return out
}
