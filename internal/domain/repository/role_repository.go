package repository

import (
	"context"

	"foodstall-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type RoleRepository interface {
	Create(ctx context.Context, role *entity.Role) error
	FindAll(ctx context.Context) ([]entity.Role, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Role, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Role, error)
	FindByName(ctx context.Context, name string) (*entity.Role, error)
	Update(ctx context.Context, role *entity.Role) error
	Delete(ctx context.Context, id uuid.UUID) error
}
