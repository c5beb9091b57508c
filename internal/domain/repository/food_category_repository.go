package repository

import (
	"context"

	"foodstall-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type FoodCategoryRepository interface {
	Create(ctx context.Context, category *entity.FoodCategory) error
	FindAll(ctx context.Context) ([]entity.FoodCategory, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodCategory, error)
	Update(ctx context.Context, category *entity.FoodCategory) error
	Delete(ctx context.Context, id uuid.UUID) error
}
