package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateCategoryRequest struct {
	CategoryName        string `json:"categoryName" validate:"required"`
	CategoryDescription string `json:"categoryDescription" validate:"required"`
	IsHidden            *bool  `json:"isHidden" validate:"required"`
}

type UpdateCategoryRequest struct {
	CategoryName        *string `json:"categoryName" validate:"omitempty,min=1"`
	CategoryDescription *string `json:"categoryDescription" validate:"omitempty,min=1"`
	IsHidden            *bool   `json:"isHidden"`
}

func (r *UpdateCategoryRequest) IsEmpty() bool {
	return r.CategoryName == nil && r.CategoryDescription == nil && r.IsHidden == nil
}

// Response DTOs

type CategoryResponse struct {
	ID                  uuid.UUID `json:"id"`
	CategoryName        string    `json:"categoryName"`
	CategoryDescription string    `json:"categoryDescription"`
	IsHidden            bool      `json:"isHidden"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
