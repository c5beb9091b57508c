package dto

import (
	"time"

	"foodstall-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// Request DTOs

type CreateRoleRequest struct {
	Name        string               `json:"name" validate:"required"`
	Permissions entity.PermissionSet `json:"permissions" validate:"required"`
}

type UpdateRoleRequest struct {
	Name        *string               `json:"name" validate:"omitempty,min=1"`
	Permissions *entity.PermissionSet `json:"permissions"`
}

func (r *UpdateRoleRequest) IsEmpty() bool {
	return r.Name == nil && r.Permissions == nil
}

// Response DTOs

type RoleResponse struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Permissions entity.PermissionSet `json:"permissions"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// RoleSummaryResponse is embedded in documents that reference a role.
type RoleSummaryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
