package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type UpdateUserRequest struct {
	Email       *string `json:"email" validate:"omitempty,email"`
	RoleName    *string `json:"roleName" validate:"omitempty,min=1"`
	NewPassword *string `json:"newPassword" validate:"omitempty,min=6"`
}

func (r *UpdateUserRequest) IsEmpty() bool {
	return r.Email == nil && r.RoleName == nil && r.NewPassword == nil
}

// Response DTOs

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	RoleID    uuid.UUID `json:"roleId"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
