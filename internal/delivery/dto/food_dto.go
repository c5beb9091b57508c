package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateFoodRequest struct {
	Name     string           `json:"name" validate:"required"`
	Price    *decimal.Decimal `json:"price" validate:"required,money"`
	Img      string           `json:"img" validate:"required"`
	IsHidden *bool            `json:"isHidden" validate:"required"`
	Category string           `json:"category" validate:"required"`
}

// UpdateFoodRequest replaces every field, so it carries the same requirements as create.
type UpdateFoodRequest struct {
	Name     *string          `json:"name" validate:"required,min=1"`
	Price    *decimal.Decimal `json:"price" validate:"required,money"`
	Img      *string          `json:"img" validate:"required,min=1"`
	IsHidden *bool            `json:"isHidden" validate:"required"`
	Category *string          `json:"category" validate:"required,min=1"`
}

func (r *UpdateFoodRequest) IsEmpty() bool {
	return r.Name == nil && r.Price == nil && r.Img == nil && r.IsHidden == nil && r.Category == nil
}

// Response DTOs

type FoodResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Img       string          `json:"img"`
	IsHidden  bool            `json:"isHidden"`
	Category  uuid.UUID       `json:"category"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
