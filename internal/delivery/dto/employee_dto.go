package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateEmployeeRequest struct {
	Name        string `json:"name" validate:"required"`
	Address     string `json:"address" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	RoleID      string `json:"roleId" validate:"required,uuid"`
	DateOfBirth string `json:"dateOfBirth" validate:"required"`
}

type UpdateEmployeeRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Address     *string `json:"address" validate:"omitempty,min=1"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,min=1"`
	RoleID      *string `json:"roleId" validate:"omitempty,uuid"`
	DateOfBirth *string `json:"dateOfBirth" validate:"omitempty,min=1"`
}

func (r *UpdateEmployeeRequest) IsEmpty() bool {
	return r.Name == nil && r.Address == nil && r.PhoneNumber == nil && r.RoleID == nil && r.DateOfBirth == nil
}

// Response DTOs

type EmployeeResponse struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Address     string               `json:"address"`
	PhoneNumber string               `json:"phoneNumber"`
	RoleID      uuid.UUID            `json:"roleId"`
	Role        *RoleSummaryResponse `json:"role,omitempty"`
	DateOfBirth string               `json:"dateOfBirth"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}
