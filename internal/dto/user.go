package dto

import (
	"time"

	"github.com/campuscore/college_erp_app/internal/core/domain"
)

// CreateUserRequest is the admin user-creation payload.
type CreateUserRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	Role        string `json:"role" binding:"required"`
	DisplayName string `json:"displayName"`
}

// UserResponse is the API representation of a staff account.
type UserResponse struct {
	Username    string    `json:"username"`
	Role        string    `json:"role"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToUserResponse maps a domain user to its API shape.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		Username:    u.Username,
		Role:        string(u.Role),
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}
