package repository

import (
	"context"

	"foodstall-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type FoodRepository interface {
	Create(ctx context.Context, food *entity.Food) error
	FindAll(ctx context.Context) ([]entity.Food, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Food, error)
	CountByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
	Update(ctx context.Context, food *entity.Food) error
	Delete(ctx context.Context, id uuid.UUID) error
}
