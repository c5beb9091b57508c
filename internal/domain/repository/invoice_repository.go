package repository

import (
	"context"

	"foodstall-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	FindAll(ctx context.Context) ([]entity.Invoice, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	UpdateDateTime(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
}
