package repository

import (
	"context"

	"foodstall-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type FoodMenuRepository interface {
	Create(ctx context.Context, menu *entity.FoodMenu) error
	FindAll(ctx context.Context) ([]entity.FoodMenu, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodMenu, error)
	Update(ctx context.Context, menu *entity.FoodMenu) error
	Delete(ctx context.Context, id uuid.UUID) error
}
