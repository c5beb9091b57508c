package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type InvoiceItemRequest struct {
	Food     string           `json:"food" validate:"required"`
	Quantity *int             `json:"quantity" validate:"required,gte=1"`
	Price    *decimal.Decimal `json:"price" validate:"required,money"`
	Sum      *decimal.Decimal `json:"sum" validate:"required,money"`
}

type CreateInvoiceRequest struct {
	Items    []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
	Date     string               `json:"date" validate:"required"`
	Time     string               `json:"time" validate:"required"`
	Subtotal *decimal.Decimal     `json:"subtotal" validate:"required,money"`
	Discount *decimal.Decimal     `json:"discount" validate:"omitempty,money"`
	Total    *decimal.Decimal     `json:"total" validate:"required,money"`
}

// UpdateInvoiceDateTimeRequest only touches the date and time of an invoice.
type UpdateInvoiceDateTimeRequest struct {
	Date *string `json:"date" validate:"omitempty,min=1"`
	Time *string `json:"time" validate:"omitempty,min=1"`
}

func (r *UpdateInvoiceDateTimeRequest) IsEmpty() bool {
	return r.Date == nil && r.Time == nil
}

// Response DTOs

type InvoiceItemResponse struct {
	ID       uuid.UUID       `json:"id"`
	Food     uuid.UUID       `json:"food"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Sum      decimal.Decimal `json:"sum"`
}

type InvoiceResponse struct {
	ID        uuid.UUID             `json:"id"`
	Items     []InvoiceItemResponse `json:"items"`
	Date      string                `json:"date"`
	Time      string                `json:"time"`
	Subtotal  decimal.Decimal       `json:"subtotal"`
	Discount  decimal.Decimal       `json:"discount"`
	Total     decimal.Decimal       `json:"total"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}
