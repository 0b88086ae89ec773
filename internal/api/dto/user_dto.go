package dto

import "github.com/shaheencodecrafters/marketplace-service/internal/domain"

// UserResponse is the public projection of a user. It never carries the
// password hash.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// NewUserResponse maps a domain user to its public projection.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
	}
}

// LoginRequest payload for credential login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SocialSignupRequest payload for provider-based find-or-create.
type SocialSignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Provider string `json:"provider"`
	IDToken  string `json:"idToken"`
}

// UpdateEmailRequest payload for the email change endpoint.
type UpdateEmailRequest struct {
	Email string `json:"email"`
}

// UpdatePasswordRequest payload for the password change endpoint.
type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}
