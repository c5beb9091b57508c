package repository

import (
	"context"
	"errors"

	"foodstall-backend/internal/domain/entity"
	domainRepo "foodstall-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type foodMenuRepository struct {
	db *gorm.DB
}

func NewFoodMenuRepository(db *gorm.DB) domainRepo.FoodMenuRepository {
	return &foodMenuRepository{db: db}
}

func (r *foodMenuRepository) Create(ctx context.Context, menu *entity.FoodMenu) error {
	return r.db.WithContext(ctx).Create(menu).Error
}

func (r *foodMenuRepository) FindAll(ctx context.Context) ([]entity.FoodMenu, error) {
	var menus []entity.FoodMenu
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *foodMenuRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodMenu, error) {
	var menu entity.FoodMenu
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&menu).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &menu, nil
}

func (r *foodMenuRepository) Update(ctx context.Context, menu *entity.FoodMenu) error {
	return r.db.WithContext(ctx).Save(menu).Error
}

func (r *foodMenuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.FoodMenu{}).Error
}
