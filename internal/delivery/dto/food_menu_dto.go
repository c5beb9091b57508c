package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateMenuRequest struct {
	MenuName    string `json:"menuName" validate:"required"`
	URL         string `json:"url" validate:"required"`
	IsHidden    *bool  `json:"isHidden" validate:"required"`
	CreatedDate string `json:"createdDate" validate:"required"`
	RouteName   string `json:"routeName" validate:"required"`
}

type UpdateMenuRequest struct {
	MenuName    *string `json:"menuName" validate:"required,min=1"`
	URL         *string `json:"url" validate:"required,min=1"`
	IsHidden    *bool   `json:"isHidden" validate:"required"`
	CreatedDate *string `json:"createdDate" validate:"required,min=1"`
	RouteName   *string `json:"routeName" validate:"required,min=1"`
}

func (r *UpdateMenuRequest) IsEmpty() bool {
	return r.MenuName == nil && r.URL == nil && r.IsHidden == nil && r.CreatedDate == nil && r.RouteName == nil
}

// Response DTOs

type MenuResponse struct {
	ID          uuid.UUID `json:"id"`
	MenuName    string    `json:"menuName"`
	URL         string    `json:"url"`
	IsHidden    bool      `json:"isHidden"`
	CreatedDate string    `json:"createdDate"`
	RouteName   string    `json:"routeName"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
