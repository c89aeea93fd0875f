package dto

import (
	"time"

	"github.com/friendfinder/backend/internal/models"
)

type RegisterRequest struct {
	Name        string            `json:"name"`
	Surname     string            `json:"surname"`
	Email       string            `json:"email"`
	Password    string            `json:"password"`
	DateOfBirth *time.Time        `json:"date_of_birth,omitempty"`
	Gender      models.UserGender `json:"gender,omitempty"`
	City        string            `json:"city,omitempty"`
	CountryID   *uint             `json:"country_id,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID      uint            `json:"id"`
	Name    string          `json:"name"`
	Surname string          `json:"surname"`
	Email   string          `json:"email"`
	Role    models.UserRole `json:"role"`
	Enabled bool            `json:"enabled"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Surname: u.Surname,
		Email:   u.Email,
		Role:    u.Role,
		Enabled: u.Enabled,
	}
}
